package posts

import (
	"errors"

	"github.com/minjaekim/sportsmate-web/internal/pkg/validator"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

type CreatePostRequest struct {
	Title           string `json:"title" binding:"required"`
	Content         string `json:"content"`
	Sport           string `json:"sport" binding:"required"`
	Location        string `json:"location" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	MaxParticipants int    `json:"maxParticipants" binding:"required"`
	Cost            int    `json:"cost"`
	Gender          string `json:"gender" binding:"required"`
	Image           string `json:"image"`
}

func (r *CreatePostRequest) validate() error {
	if !validator.IsValidSport(r.Sport) {
		return errors.New("unknown sport")
	}
	if !validator.IsValidDate(r.Date) {
		return errors.New("date must be YYYY-MM-DD")
	}
	if !validator.IsValidTime(r.Time) {
		return errors.New("time must be HH:MM")
	}
	if !validator.IsValidParticipants(r.MaxParticipants) {
		return errors.New("maxParticipants must be between 1 and 20")
	}
	if r.Cost < 0 {
		return errors.New("cost cannot be negative")
	}
	if !validator.IsValidPostGender(r.Gender) {
		return errors.New("gender must be all, male or female")
	}
	return nil
}

func (r *CreatePostRequest) toInput() upstream.CreatePostInput {
	return upstream.CreatePostInput{
		Title:           r.Title,
		Content:         r.Content,
		Sport:           r.Sport,
		Location:        r.Location,
		Date:            r.Date,
		Time:            r.Time,
		MaxParticipants: r.MaxParticipants,
		Cost:            r.Cost,
		Gender:          r.Gender,
		Image:           r.Image,
	}
}

// UpdatePostRequest is a partial edit; only set fields reach the backend.
type UpdatePostRequest struct {
	Title           *string `json:"title"`
	Content         *string `json:"content"`
	Sport           *string `json:"sport"`
	Location        *string `json:"location"`
	Date            *string `json:"date"`
	Time            *string `json:"time"`
	MaxParticipants *int    `json:"maxParticipants"`
	Cost            *int    `json:"cost"`
	Gender          *string `json:"gender"`
	Image           *string `json:"image"`
}

func (r *UpdatePostRequest) validate() error {
	if r.Sport != nil && !validator.IsValidSport(*r.Sport) {
		return errors.New("unknown sport")
	}
	if r.Date != nil && !validator.IsValidDate(*r.Date) {
		return errors.New("date must be YYYY-MM-DD")
	}
	if r.Time != nil && !validator.IsValidTime(*r.Time) {
		return errors.New("time must be HH:MM")
	}
	if r.MaxParticipants != nil && !validator.IsValidParticipants(*r.MaxParticipants) {
		return errors.New("maxParticipants must be between 1 and 20")
	}
	if r.Cost != nil && *r.Cost < 0 {
		return errors.New("cost cannot be negative")
	}
	if r.Gender != nil && !validator.IsValidPostGender(*r.Gender) {
		return errors.New("gender must be all, male or female")
	}
	return nil
}

func (r *UpdatePostRequest) toInput() upstream.UpdatePostInput {
	return upstream.UpdatePostInput{
		Title:           r.Title,
		Content:         r.Content,
		Sport:           r.Sport,
		Location:        r.Location,
		Date:            r.Date,
		Time:            r.Time,
		MaxParticipants: r.MaxParticipants,
		Cost:            r.Cost,
		Gender:          r.Gender,
		Image:           r.Image,
	}
}
