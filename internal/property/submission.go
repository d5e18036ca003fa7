package property

import (
	"time"

	"estates-backend/internal/models"
	"estates-backend/internal/storage"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// -------------------------
// Submission (create) types
// -------------------------

// PropertySubmission is the nested JSON carried in the multipart `data`
// field of a create request.
type PropertySubmission struct {
	Basic          *BasicSection        `json:"basic" validate:"required"`
	Details        *DetailsSection      `json:"details"`
	Location       *LocationSection     `json:"location"`
	NearestTo      []NearestToEntry     `json:"nearest_to"`
	Amenities      []uint               `json:"amenities"`
	KeyFeatures    []uint               `json:"keyfeature"`
	Configurations []ConfigurationEntry `json:"configurations"`
}

type BasicSection struct {
	Title            string   `json:"title" validate:"required"`
	CategoryID       uint     `json:"category_id" validate:"required"`
	PropertyType     uint     `json:"property_type" validate:"required"`
	TransactionType  string   `json:"transaction_type"`
	PossessionStatus string   `json:"possession_status"`
	ExpectedPrice    *float64 `json:"expected_price"`
	PricePerSqft     *float64 `json:"price_per_sqft"`
	DeveloperID      *uint    `json:"developer_id"`
}

type DetailsSection struct {
	Bedrooms  *int `json:"bedrooms"`
	Bathrooms *int `json:"bathrooms"`
	Balconies *int `json:"balconies"`

	BuiltUpArea      *float64 `json:"built_up_area"`
	CarpetArea       *float64 `json:"carpet_area"`
	SuperBuiltUpArea *float64 `json:"super_built_up_area"`
	AreaUnit         *string  `json:"area_unit"`

	FloorNo     *int `json:"floor_no"`
	TotalFloors *int `json:"total_floors"`

	FurnishedStatus *string `json:"furnished_status"`
	Facing          *string `json:"facing"`
	AgeOfProperty   *string `json:"age_of_property"`

	City     *string `json:"city"`
	Locality *string `json:"locality"`
	Address  *string `json:"address"`

	ProjectName *string `json:"project_name"`
	Description *string `json:"description"`
	ReraID      *string `json:"rera_id"`

	// Plain YYYY-MM-DD string; unparseable values are dropped.
	PossessionDate *string `json:"possession_date"`

	MaintenanceCharge *float64 `json:"maintenance_charge"`
	BookingAmount     *float64 `json:"booking_amount"`
}

type LocationSection struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

type NearestToEntry struct {
	NearestToID *uint    `json:"nearest_to_id"`
	Distance    *float64 `json:"distance"`
}

type ConfigurationEntry struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Bedrooms    *int     `json:"bedrooms"`
	Bathrooms   *int     `json:"bathrooms"`
	CarpetArea  *float64 `json:"carpet_area"`
	BuiltUpArea *float64 `json:"built_up_area"`
	Price       *float64 `json:"price"`
}

// ConfigFileMeta pairs a configuration key with the original filename of
// the file uploaded for it.
type ConfigFileMeta struct {
	Key      string `json:"key"`
	FileName string `json:"file_name"`
}

// DocumentMeta tags an uploaded document file with its type by original
// filename.
type DocumentMeta struct {
	FileName string  `json:"file_name"`
	Type     *string `json:"type"`
}

// ImageMeta flags an uploaded image as primary by original filename.
type ImageMeta struct {
	FileName  string `json:"file_name"`
	IsPrimary bool   `json:"is_primary"`
}

// hasAny reports whether the details section carries at least one
// recognized attribute; an empty section produces no row.
func (d *DetailsSection) hasAny() bool {
	if d == nil {
		return false
	}
	return d.Bedrooms != nil || d.Bathrooms != nil || d.Balconies != nil ||
		d.BuiltUpArea != nil || d.CarpetArea != nil || d.SuperBuiltUpArea != nil ||
		d.AreaUnit != nil || d.FloorNo != nil || d.TotalFloors != nil ||
		d.FurnishedStatus != nil || d.Facing != nil || d.AgeOfProperty != nil ||
		d.City != nil || d.Locality != nil || d.Address != nil ||
		d.ProjectName != nil || d.Description != nil || d.ReraID != nil ||
		d.PossessionDate != nil || d.MaintenanceCharge != nil || d.BookingAmount != nil
}

func (d *DetailsSection) toModel(propertyID uint) models.PropertyDetails {
	return models.PropertyDetails{
		PropertyID:        propertyID,
		Bedrooms:          d.Bedrooms,
		Bathrooms:         d.Bathrooms,
		Balconies:         d.Balconies,
		BuiltUpArea:       d.BuiltUpArea,
		CarpetArea:        d.CarpetArea,
		SuperBuiltUpArea:  d.SuperBuiltUpArea,
		AreaUnit:          d.AreaUnit,
		FloorNo:           d.FloorNo,
		TotalFloors:       d.TotalFloors,
		FurnishedStatus:   d.FurnishedStatus,
		Facing:            d.Facing,
		AgeOfProperty:     d.AgeOfProperty,
		City:              d.City,
		Locality:          d.Locality,
		Address:           d.Address,
		ProjectName:       d.ProjectName,
		Description:       d.Description,
		ReraID:            d.ReraID,
		PossessionDate:    parsePossessionDate(d.PossessionDate),
		MaintenanceCharge: d.MaintenanceCharge,
		BookingAmount:     d.BookingAmount,
	}
}

func parsePossessionDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// -------------------------
// File correlation helpers
// -------------------------

// forcePrimaryImage returns image rows with exactly one primary whenever at
// least one image exists: the first flagged image wins, extra flags are
// dropped, and with no flag at all the first image in submission order is
// promoted.
func forcePrimaryImage(files []storage.StoredFile, primaryFlags []bool) []models.PropertyImage {
	if len(files) == 0 {
		return nil
	}

	primaryIdx := 0
	for i := range files {
		if i < len(primaryFlags) && primaryFlags[i] {
			primaryIdx = i
			break
		}
	}

	images := make([]models.PropertyImage, 0, len(files))
	for i, f := range files {
		images = append(images, models.PropertyImage{
			URL:        f.URL,
			StorageKey: f.Key,
			IsPrimary:  i == primaryIdx,
		})
	}
	return images
}

// primaryFlags resolves the per-file primary flag from image metadata by
// original filename.
func primaryFlags(files []storage.StoredFile, meta []ImageMeta) []bool {
	flagByName := make(map[string]bool, len(meta))
	for _, m := range meta {
		if m.IsPrimary {
			flagByName[m.FileName] = true
		}
	}

	flags := make([]bool, len(files))
	for i, f := range files {
		flags[i] = flagByName[f.OriginalName]
	}
	return flags
}

// correlateConfigFiles resolves each configuration key to the storage URL of
// its uploaded file, joining key → filename via meta and filename → URL via
// the uploaded files. Each uploaded file is consumed at most once, so
// duplicate filenames attach in submission order.
func correlateConfigFiles(meta []ConfigFileMeta, files []storage.StoredFile) map[string]string {
	urlByKey := make(map[string]string, len(meta))
	used := make([]bool, len(files))

	for _, m := range meta {
		if m.Key == "" || m.FileName == "" {
			continue
		}
		for i, f := range files {
			if used[i] || f.OriginalName != m.FileName {
				continue
			}
			urlByKey[m.Key] = f.URL
			used[i] = true
			break
		}
	}
	return urlByKey
}

// correlateDocuments builds document rows from uploaded files, tagging each
// with the type its metadata names; files without metadata keep a NULL type.
func correlateDocuments(files []storage.StoredFile, meta []DocumentMeta) []models.PropertyDocument {
	typeByName := make(map[string]*string, len(meta))
	for _, m := range meta {
		if m.FileName != "" {
			typeByName[m.FileName] = m.Type
		}
	}

	docs := make([]models.PropertyDocument, 0, len(files))
	for _, f := range files {
		docs = append(docs, models.PropertyDocument{
			URL:        f.URL,
			StorageKey: f.Key,
			Type:       typeByName[f.OriginalName],
		})
	}
	return docs
}

// validNearestTo filters out entries missing either the reference or the
// distance; partial entries are skipped, not rejected.
func validNearestTo(propertyID uint, entries []NearestToEntry) []models.PropertyNearestTo {
	rows := make([]models.PropertyNearestTo, 0, len(entries))
	for _, e := range entries {
		if e.NearestToID == nil || e.Distance == nil {
			continue
		}
		rows = append(rows, models.PropertyNearestTo{
			PropertyID:  propertyID,
			NearestToID: *e.NearestToID,
			Distance:    *e.Distance,
		})
	}
	return rows
}

// -------------------------
// Patch (update) types
// -------------------------

// PropertyPatch is the partial-update shape. Each section is independently
// optional; absent sections leave their relation untouched, while a present
// but empty collection clears it (replace, not merge).
type PropertyPatch struct {
	Basic       *BasicPatch       `json:"basic"`
	Details     *DetailsSection   `json:"details"`
	Location    *LocationPatch    `json:"location"`
	NearestTo   *[]NearestToEntry `json:"nearest_to"`
	Amenities   *[]uint           `json:"amenities"`
	KeyFeatures *[]uint           `json:"keyfeature"`
}

type BasicPatch struct {
	Title            *string  `json:"title"`
	TransactionType  *string  `json:"transaction_type"`
	PossessionStatus *string  `json:"possession_status"`
	ExpectedPrice    *float64 `json:"expected_price"`
	PricePerSqft     *float64 `json:"price_per_sqft"`
	CategoryID       *uint    `json:"category_id"`
	PropertyType     *uint    `json:"property_type"`
	DeveloperID      *uint    `json:"developer_id"`
}

type LocationPatch struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
}

// columns maps only the fields actually present in the patch onto their
// column names. Anything not named here can never reach the store.
func (p *BasicPatch) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.TransactionType != nil {
		cols["transaction_type"] = *p.TransactionType
	}
	if p.PossessionStatus != nil {
		cols["possession_status"] = *p.PossessionStatus
	}
	if p.ExpectedPrice != nil {
		cols["expected_price"] = *p.ExpectedPrice
	}
	if p.PricePerSqft != nil {
		cols["price_per_sqft"] = *p.PricePerSqft
	}
	if p.CategoryID != nil {
		cols["category_id"] = *p.CategoryID
	}
	if p.PropertyType != nil {
		cols["property_type_id"] = *p.PropertyType
	}
	if p.DeveloperID != nil {
		cols["developer_id"] = *p.DeveloperID
	}
	return cols
}

func (d *DetailsSection) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if d.Bedrooms != nil {
		cols["bedrooms"] = *d.Bedrooms
	}
	if d.Bathrooms != nil {
		cols["bathrooms"] = *d.Bathrooms
	}
	if d.Balconies != nil {
		cols["balconies"] = *d.Balconies
	}
	if d.BuiltUpArea != nil {
		cols["built_up_area"] = *d.BuiltUpArea
	}
	if d.CarpetArea != nil {
		cols["carpet_area"] = *d.CarpetArea
	}
	if d.SuperBuiltUpArea != nil {
		cols["super_built_up_area"] = *d.SuperBuiltUpArea
	}
	if d.AreaUnit != nil {
		cols["area_unit"] = *d.AreaUnit
	}
	if d.FloorNo != nil {
		cols["floor_no"] = *d.FloorNo
	}
	if d.TotalFloors != nil {
		cols["total_floors"] = *d.TotalFloors
	}
	if d.FurnishedStatus != nil {
		cols["furnished_status"] = *d.FurnishedStatus
	}
	if d.Facing != nil {
		cols["facing"] = *d.Facing
	}
	if d.AgeOfProperty != nil {
		cols["age_of_property"] = *d.AgeOfProperty
	}
	if d.City != nil {
		cols["city"] = *d.City
	}
	if d.Locality != nil {
		cols["locality"] = *d.Locality
	}
	if d.Address != nil {
		cols["address"] = *d.Address
	}
	if d.ProjectName != nil {
		cols["project_name"] = *d.ProjectName
	}
	if d.Description != nil {
		cols["description"] = *d.Description
	}
	if d.ReraID != nil {
		cols["rera_id"] = *d.ReraID
	}
	if t := parsePossessionDate(d.PossessionDate); t != nil {
		cols["possession_date"] = *t
	}
	if d.MaintenanceCharge != nil {
		cols["maintenance_charge"] = *d.MaintenanceCharge
	}
	if d.BookingAmount != nil {
		cols["booking_amount"] = *d.BookingAmount
	}
	return cols
}

func (l *LocationPatch) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if l.Latitude != nil {
		cols["latitude"] = *l.Latitude
	}
	if l.Longitude != nil {
		cols["longitude"] = *l.Longitude
	}
	if l.Address != nil {
		cols["address"] = *l.Address
	}
	return cols
}
