package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type ProductColor struct {
	Name      string `json:"name" binding:"required" example:"Ocean Blue"`
	Hex       string `json:"hex" binding:"required" example:"#0369A1"`
	Available bool   `json:"available"`
}

// Custom slice types so we can attach GORM JSONB scanners
type (
	ColorList   []ProductColor
	ImageList   []string
	TagsList    []string
	FeatureList []string
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID             int            `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name" gorm:"not null;index"`
	Description    string         `json:"description" gorm:"not null"`
	Price          float64        `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Features       FeatureList    `json:"features" gorm:"type:jsonb;not null;default:'[]'"`
	Specifications datatypes.JSON `json:"specifications" gorm:"type:jsonb;not null;default:'{}'"`
	Colors         ColorList      `json:"colors" gorm:"type:jsonb;not null;default:'[]'"`
	Images         ImageList      `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Category       string         `json:"category" gorm:"not null;index"`
	Tags           TagsList       `json:"tags" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	IsNew          bool           `json:"isNew" gorm:"column:is_new;not null;default:false"`
	BestSeller     bool           `json:"bestSeller" gorm:"column:best_seller;not null;default:false"`
	Rating         float64        `json:"rating" gorm:"not null;default:0"`
	Inventory      int            `json:"inventory" gorm:"not null;default:0;check:inventory >= 0"`
	CreatedAt      time.Time      `json:"created_at,omitempty" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at,omitempty" gorm:"autoUpdateTime"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// Color looks up a color variant by name, case-insensitively.
func (p Product) Color(name string) (ProductColor, bool) {
	for _, c := range p.Colors {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return ProductColor{}, false
}

// HasTag reports whether the product carries the tag, case-insensitively.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

// ColorList methods
func (c *ColorList) Scan(value interface{}) error {
	if value == nil {
		*c = make(ColorList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ColorList")
	}
	return json.Unmarshal(bytes, c)
}

func (c ColorList) Value() (driver.Value, error) {
	if c == nil {
		return json.Marshal([]ProductColor{})
	}
	return json.Marshal(c)
}

// ImageList methods
func (i *ImageList) Scan(value interface{}) error {
	if value == nil {
		*i = make(ImageList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ImageList")
	}
	return json.Unmarshal(bytes, i)
}

func (i ImageList) Value() (driver.Value, error) {
	if i == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(i)
}

// TagsList methods
func (t *TagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

// FeatureList methods
func (f *FeatureList) Scan(value interface{}) error {
	if value == nil {
		*f = make(FeatureList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan FeatureList")
	}
	return json.Unmarshal(bytes, f)
}

func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(f)
}
