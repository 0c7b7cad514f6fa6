package entity

// Reminder is a maintenance or expiry reminder attached to a vehicle.
type Reminder struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	VehicleID uint     `gorm:"column:vehicle_id;index;not null" json:"vehicle_id"`
	Vehicle   *Vehicle `gorm:"foreignKey:VehicleID" json:"-"`
	Type      string   `gorm:"column:type;index" json:"type"`
	DueDate   *Date    `gorm:"column:due_date;type:text;index" json:"due_date"`
	Message   string   `gorm:"column:message;type:text" json:"message"`
	Mileage   *int     `gorm:"column:mileage" json:"mileage,omitempty"`
	Priority  *string  `gorm:"column:priority" json:"priority,omitempty"`
	Category  *string  `gorm:"column:category" json:"category,omitempty"`
	IsSent    bool     `gorm:"column:is_sent;not null;default:false" json:"is_sent"`
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "reminders"
}

// MarkSent flips the sent-state. It never goes back to false.
func (r *Reminder) MarkSent() {
	r.IsSent = true
}
