package course

import "gorm.io/gorm"

// Lesson is a single markdown lesson within a course
type Lesson struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Content   string `json:"content" gorm:"type:text"` // markdown body
	Duration  string `json:"duration" gorm:"default:''"`
	OrderNum  int    `json:"order_num" gorm:"default:0"` // lesson order in course
	IsDeleted bool   `gorm:"default:false"`
}
