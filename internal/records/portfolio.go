package records

import (
	"slices"

	"github.com/google/uuid"
)

// Portfolio is a finished photograph kept in the photographer's portfolio.
type Portfolio struct {
	ID           uuid.UUID         `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Category     PortfolioCategory `json:"category"`
	ShootingDate Time              `json:"shootingDate"`
	Location     string            `json:"location"`
	Camera       string            `json:"camera"`
	Lens         string            `json:"lens"`
	Settings     string            `json:"settings"`
	Tags         []string          `json:"tags"`
	IsFavorite   bool              `json:"isFavorite"`
	Rating       int               `json:"rating"`
	ImageData    []byte            `json:"imageData,omitempty"`
	ClientName   *string           `json:"clientName,omitempty"`
	ProjectType  ProjectType       `json:"projectType"`
	CreatedDate  Time              `json:"createdDate"`
}

// NewPortfolio returns a portfolio item with a fresh ID and default values.
func NewPortfolio() Portfolio {
	now := Now()
	return Portfolio{
		ID:           uuid.New(),
		Category:     PortfolioPortrait,
		ShootingDate: now,
		Tags:         []string{},
		Rating:       5,
		ProjectType:  ProjectPersonal,
		CreatedDate:  now,
	}
}

func (p Portfolio) RecordID() uuid.UUID { return p.ID }

// PortfolioCategory is the subject category of a portfolio item.
type PortfolioCategory string

const (
	PortfolioPortrait     PortfolioCategory = "Portrait"
	PortfolioLandscape    PortfolioCategory = "Landscape"
	PortfolioWedding      PortfolioCategory = "Wedding"
	PortfolioCommercial   PortfolioCategory = "Commercial"
	PortfolioFashion      PortfolioCategory = "Fashion"
	PortfolioStreet       PortfolioCategory = "Street"
	PortfolioNature       PortfolioCategory = "Nature"
	PortfolioArchitecture PortfolioCategory = "Architecture"
	PortfolioSports       PortfolioCategory = "Sports"
	PortfolioMacro        PortfolioCategory = "Macro"
	PortfolioOther        PortfolioCategory = "Other"
)

func PortfolioCategoryValues() []PortfolioCategory {
	return []PortfolioCategory{
		PortfolioPortrait, PortfolioLandscape, PortfolioWedding, PortfolioCommercial,
		PortfolioFashion, PortfolioStreet, PortfolioNature, PortfolioArchitecture,
		PortfolioSports, PortfolioMacro, PortfolioOther,
	}
}

func (c PortfolioCategory) Valid() bool { return slices.Contains(PortfolioCategoryValues(), c) }

func (c *PortfolioCategory) UnmarshalText(text []byte) error {
	v, err := parseLabel("portfolio category", PortfolioCategoryValues(), text)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ProjectType describes who a portfolio item was shot for.
type ProjectType string

const (
	ProjectPersonal   ProjectType = "Personal"
	ProjectCommercial ProjectType = "Commercial"
	ProjectClientWork ProjectType = "Client Work"
	ProjectPortfolio  ProjectType = "Portfolio"
	ProjectTestShoot  ProjectType = "Test Shoot"
)

func ProjectTypeValues() []ProjectType {
	return []ProjectType{ProjectPersonal, ProjectCommercial, ProjectClientWork, ProjectPortfolio, ProjectTestShoot}
}

func (p ProjectType) Valid() bool { return slices.Contains(ProjectTypeValues(), p) }

func (p *ProjectType) UnmarshalText(text []byte) error {
	v, err := parseLabel("project type", ProjectTypeValues(), text)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
