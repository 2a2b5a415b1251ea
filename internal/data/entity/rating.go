package entity

import (
	"github.com/google/uuid"
)

type RatingType string

const (
	RatingTypeRoom     RatingType = "room"
	RatingTypeActivity RatingType = "activity"
)

type Rating struct {
	BaseSimple
	RatingType RatingType `db:"rating_type"`
	RoomID     *uuid.UUID `db:"room_id"`
	ActivityID *uuid.UUID `db:"activity_id"`
	Rating     int        `db:"rating"` // 1..5
	ReviewText *string    `db:"review_text"`
	GuestName  string     `db:"guest_name"`
}
