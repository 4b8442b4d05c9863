package repository

import (
	catalogRepo "finalprojectapi/database/repository/catalog"
	reservationRepo "finalprojectapi/database/repository/reservation"
	tableRepo "finalprojectapi/database/repository/table"
	"finalprojectapi/database/store"
)

// Re-export the repository interfaces and constructors.
type TableRepository = tableRepo.TableRepository

type ReservationRepository = reservationRepo.ReservationRepository

type BrandRepository = catalogRepo.BrandRepository

type ProductRepository = catalogRepo.ProductRepository

var (
	NewTableRepo       = tableRepo.NewTableRepo
	NewReservationRepo = reservationRepo.NewReservationRepo
	NewBrandRepo       = catalogRepo.NewBrandRepo
	NewProductRepo     = catalogRepo.NewProductRepo
)

// Repositories bundles every repository over one document store.
type Repositories struct {
	Tables       TableRepository
	Reservations ReservationRepository
	Brands       BrandRepository
	Products     ProductRepository
}

func New(ds store.DocumentStore) *Repositories {
	return &Repositories{
		Tables:       NewTableRepo(ds),
		Reservations: NewReservationRepo(ds),
		Brands:       NewBrandRepo(ds),
		Products:     NewProductRepo(ds),
	}
}
