package models

import "gorm.io/gorm"

type UserContentProgress struct {
	gorm.Model
	UserID    uint `gorm:"index"`
	CourseID  uint `gorm:"index"`
	ContentID uint
	Completed bool
}

type CourseProgressOverview struct {
	CourseID         uint    `json:"course_id"`
	CourseTitle      string  `json:"course_title"`
	ContentsTotal    int     `json:"contents_total"`
	ContentsComplete int     `json:"contents_complete"`
	CompletionRate   float64 `json:"completion_rate"`
}
