package entity

// Vehicle is a car owned by a user.
type Vehicle struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID      *uint  `gorm:"column:owner_id;index" json:"owner_id"`
	Owner        *User  `gorm:"foreignKey:OwnerID" json:"-"`
	Make         string `gorm:"column:make" json:"make"`
	Model        string `gorm:"column:model" json:"model"`
	Year         int    `gorm:"column:year" json:"year"`
	Mileage      *int   `gorm:"column:mileage" json:"mileage"`
	IsAccessible bool   `gorm:"column:is_accessible;not null" json:"is_accessible"`
}

// TableName specifies the table name for the Vehicle entity.
func (Vehicle) TableName() string {
	return "vehicles"
}

// OwnedBy reports whether userID owns the vehicle.
func (v *Vehicle) OwnedBy(userID uint) bool {
	return v.OwnerID != nil && *v.OwnerID == userID
}
