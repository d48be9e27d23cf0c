package domain

import "time"

// SwingArea enumerates the parts of a golfer's game feedback can target.
type SwingArea string

const (
	SwingAreaDrive    SwingArea = "DRIVE"
	SwingAreaIrons    SwingArea = "IRONS"
	SwingAreaChipping SwingArea = "CHIPPING"
	SwingAreaPutting  SwingArea = "PUTTING"
)

// SwingFeedback is an instructor's evaluation note for a golfer.
type SwingFeedback struct {
	ID           string
	GolferID     string
	InstructorID string
	Area         SwingArea
	Rating       int
	Note         string
	CreatedAt    time.Time
}
