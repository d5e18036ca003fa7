package property

import (
	"encoding/json"
	"mime/multipart"
	"time"

	"estates-backend/internal/apperr"
	"estates-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// The full-list response is cached for a short window. Writes flush the key
// explicitly, so the cache is only ever stale across processes, not within
// one.
const listCacheKey = "property:list"

var listCache = gocache.New(time.Minute, 2*time.Minute)

func invalidateListCache() {
	listCache.Delete(listCacheKey)
}

// POST /property  (multipart)
// `data` carries the JSON submission; files ride in images[]/documents[]/
// configFiles[]; imageMeta/documentMeta/configFileMeta correlate them.
func CreatePropertyHandler(svc *Service, store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.FormValue("data")
		if raw == "" {
			return fiber.NewError(fiber.StatusBadRequest, "missing data field")
		}

		var submission PropertySubmission
		if err := json.Unmarshal([]byte(raw), &submission); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid data JSON")
		}

		in := CreateInput{Submission: submission}

		if err := parseMetaField(c, "imageMeta", &in.ImageMeta); err != nil {
			return err
		}
		if err := parseMetaField(c, "documentMeta", &in.DocumentMeta); err != nil {
			return err
		}
		if err := parseMetaField(c, "configFileMeta", &in.ConfigFileMeta); err != nil {
			return err
		}

		form, err := c.MultipartForm()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid multipart form")
		}

		var saved []storage.StoredFile
		cleanup := func() {
			for _, f := range saved {
				if err := store.Remove(f.Key); err != nil {
					logrus.WithError(err).WithField("key", f.Key).Warn("cannot remove orphaned upload")
				}
			}
		}

		saveAll := func(headers []*multipart.FileHeader) ([]storage.StoredFile, error) {
			files := make([]storage.StoredFile, 0, len(headers))
			for _, h := range headers {
				f, err := store.Save(h)
				if err != nil {
					return nil, err
				}
				saved = append(saved, f)
				files = append(files, f)
			}
			return files, nil
		}

		if in.Images, err = saveAll(form.File["images"]); err == nil {
			if in.Documents, err = saveAll(form.File["documents"]); err == nil {
				in.ConfigFiles, err = saveAll(form.File["configFiles"])
			}
		}
		if err != nil {
			cleanup()
			logrus.WithError(err).Error("file upload failed")
			return fiber.NewError(fiber.StatusInternalServerError, "failed to store uploaded files")
		}

		id, err := svc.Create(in)
		if err != nil {
			cleanup()
			return apperr.ToFiber(err, "failed to add property")
		}

		invalidateListCache()

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"property_id": id})
	}
}

func parseMetaField(c *fiber.Ctx, field string, dst interface{}) error {
	raw := c.FormValue(field)
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" JSON")
	}
	return nil
}

// GET /property
func ListPropertiesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cached, ok := listCache.Get(listCacheKey); ok {
			return c.JSON(cached)
		}

		props, err := svc.GetAll()
		if err != nil {
			return apperr.ToFiber(err, "failed to list properties")
		}

		listCache.SetDefault(listCacheKey, props)
		return c.JSON(props)
	}
}

// GET /property/:id
func GetPropertyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
		}

		prop, err := svc.GetByID(uint(id))
		if err != nil {
			return apperr.ToFiber(err, "failed to load property")
		}
		return c.JSON(prop)
	}
}

// PUT /property/:id
func UpdatePropertyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
		}

		var patch PropertyPatch
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		if err := svc.Update(uint(id), patch); err != nil {
			return apperr.ToFiber(err, "failed to update property")
		}

		invalidateListCache()
		return c.JSON(fiber.Map{"success": true})
	}
}

// DELETE /property/:id
func DeletePropertyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
		}

		if err := svc.Delete(uint(id)); err != nil {
			return apperr.ToFiber(err, "failed to delete property")
		}

		invalidateListCache()
		return c.JSON(fiber.Map{"success": true})
	}
}

// POST /property/:id/images  (multipart, images[])
func UploadImagesHandler(svc *Service, store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
		}

		form, err := c.MultipartForm()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid multipart form")
		}
		headers := form.File["images"]
		if len(headers) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "no images supplied")
		}

		files := make([]storage.StoredFile, 0, len(headers))
		for _, h := range headers {
			f, err := store.Save(h)
			if err != nil {
				for _, prev := range files {
					if rmErr := store.Remove(prev.Key); rmErr != nil {
						logrus.WithError(rmErr).WithField("key", prev.Key).Warn("cannot remove orphaned upload")
					}
				}
				logrus.WithError(err).Error("image upload failed")
				return fiber.NewError(fiber.StatusInternalServerError, "failed to store uploaded images")
			}
			files = append(files, f)
		}

		if err := svc.AddImages(uint(id), files); err != nil {
			for _, f := range files {
				if rmErr := store.Remove(f.Key); rmErr != nil {
					logrus.WithError(rmErr).WithField("key", f.Key).Warn("cannot remove orphaned upload")
				}
			}
			return apperr.ToFiber(err, "failed to add images")
		}

		invalidateListCache()
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "count": len(files)})
	}
}
