package postgres

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables for every schema in this package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&EmployeeSchema{},
		&TeamMemberSchema{},
		&ReviewSchema{},
		&GoalSchema{},
		&TNASchema{},
	)
}
