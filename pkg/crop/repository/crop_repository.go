package repository

import "harvestpro/entities"

type CropRepository interface {
	Create(cr *entities.Crop) error
	FindByID(id uint) (*entities.Crop, error)
	List() ([]entities.Crop, error)
	Save(cr *entities.Crop) error

	CreateField(f *entities.Field) error
	FindField(id uint) (*entities.Field, error)
	ListFieldsByFarm(farmID uint) ([]entities.Field, error)
	// FieldsDueWithin returns fields whose expected harvest date falls in
	// the next n days, soonest first.
	FieldsDueWithin(days int) ([]entities.Field, error)
}
