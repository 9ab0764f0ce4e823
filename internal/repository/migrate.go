package repository

import (
	"gorm.io/gorm"
)

type requestStatusModel struct {
	ID   int    `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (requestStatusModel) TableName() string { return "request_statuses" }

// gorm's postgres driver stores time.Time columns as timestamptz, so the
// range expression must be tstzrange; tsrange(timestamptz, ...) does not
// exist and the ALTER would fail at startup. Covered by a test because the
// sqlite-backed suite never executes this block.
const bookingExclusionDDL = `
ALTER TABLE bookings
ADD CONSTRAINT no_double_booking
EXCLUDE USING gist (
  room_id WITH =,
  tstzrange(req_start, req_end, '[)') WITH &&
) WHERE (status_id <> 3)
`

// Migrate creates the schema and seeds the fixed request-status lookup.
// On Postgres it also installs the exclusion constraint that rejects the
// second of two concurrent overlapping bookings for the same room; the
// submission path treats that violation as a conflict.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&requestStatusModel{},
		&userModel{},
		&roomModel{},
		&equipmentModel{},
		&categoryModel{},
		&eventModel{},
		&bookingModel{},
		&equipmentRequestModel{},
		&registrationModel{},
		&announcementModel{},
	); err != nil {
		return err
	}

	statuses := []requestStatusModel{
		{ID: 1, Name: "Pending"},
		{ID: 2, Name: "Approved"},
		{ID: 3, Name: "Rejected"},
	}
	for _, s := range statuses {
		if err := db.Where(requestStatusModel{ID: s.ID}).
			FirstOrCreate(&requestStatusModel{ID: s.ID, Name: s.Name}).Error; err != nil {
			return err
		}
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			return err
		}
		err := db.Exec(bookingExclusionDDL).Error
		if err != nil && !isDuplicateConstraint(err) {
			return err
		}
	}

	return nil
}

func isDuplicateConstraint(err error) bool {
	return pgErrCode(err) == "42P07" || pgErrCode(err) == "42710"
}
