package models

// Category is a fixed trivia topic. Ids are assigned by the seed migration.
type Category struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false"`
	Type string `gorm:"not null"`
}

func (Category) TableName() string { return "categories" }

// Question is a stored trivia question. Category references a Category id
// without a foreign key constraint.
type Question struct {
	ID         int    `gorm:"primaryKey"`
	Question   string `gorm:"not null"`
	Answer     string `gorm:"not null"`
	Category   int    `gorm:"not null;index"`
	Difficulty int    `gorm:"not null;index"`
}

func (Question) TableName() string { return "questions" }
