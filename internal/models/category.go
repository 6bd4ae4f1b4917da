package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a raw statement label recorded under a family. It acts as
// an alternate match key for classification by exact name.
type Category struct {
	DefaultModel
	Name             string
	CategoryFamilyID uuid.UUID
	CategoryFamily   CategoryFamily
}

func (c Category) Self() string {
	return "Category"
}

func (c *Category) BeforeSave(_ *gorm.DB) (err error) {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}
