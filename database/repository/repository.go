package repository

import (
	bookingRepo "github.com/Tshikamisava/nanny-gold-sub003/database/repository/booking"
	modificationRepo "github.com/Tshikamisava/nanny-gold-sub003/database/repository/modification"
	revenueRepo "github.com/Tshikamisava/nanny-gold-sub003/database/repository/revenue"
)

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the RevenueRepository interface and constructor.
type RevenueRepository = revenueRepo.RevenueRepository

var NewMongoRevenueRepo = revenueRepo.NewMongoRevenueRepo

// Re-export the ModificationRepository interface and constructor.
type ModificationRepository = modificationRepo.ModificationRepository

var NewMongoModificationRepo = modificationRepo.NewMongoModificationRepo
