package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string
	ShortDesc   string
	Description string
	Category    string
	AuthorID    uint
	LogoURL     string
	Contents    []CourseContent
}

type CourseContent struct {
	gorm.Model
	CourseID      uint
	Title         string
	ContentType   string // video, quiz, text
	SequenceOrder int
	YoutubeID     string // for video content
	Body          string // for text content
	Questions     []QuizQuestion `gorm:"foreignKey:ContentID"`
}

type QuizQuestion struct {
	gorm.Model
	ContentID     uint
	Question      string
	Options       string // JSON array of options
	CorrectIndex  int
	SequenceOrder int
}
