package mypage

import (
	"errors"

	"github.com/minjaekim/sportsmate-web/internal/pkg/validator"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

// UpdateProfileRequest is a partial profile edit from the profile screen.
type UpdateProfileRequest struct {
	Nickname        *string  `json:"nickname"`
	Age             *int     `json:"age"`
	Region          *string  `json:"region"`
	PreferredSports []string `json:"preferredSports"`
}

func (r *UpdateProfileRequest) validate() error {
	if r.Nickname != nil && !validator.IsValidNickname(*r.Nickname) {
		return errors.New("nickname must be 2-10 hangul, latin or digit characters")
	}
	if r.Age != nil && !validator.IsValidAge(*r.Age) {
		return errors.New("age must be between 14 and 100")
	}
	for _, sport := range r.PreferredSports {
		if !validator.IsValidSport(sport) {
			return errors.New("unknown sport")
		}
	}
	return nil
}

func (r *UpdateProfileRequest) toInput() upstream.UpdateProfileInput {
	return upstream.UpdateProfileInput{
		Nickname:        r.Nickname,
		Age:             r.Age,
		Region:          r.Region,
		PreferredSports: r.PreferredSports,
	}
}

// OverviewResponse is everything the mypage landing screen shows in one
// round trip to the gateway.
type OverviewResponse struct {
	Profile      *upstream.User         `json:"profile"`
	MyPosts      []upstream.Post        `json:"myPosts"`
	Favorites    []upstream.Favorite    `json:"favorites"`
	Applications []upstream.Application `json:"applications"`
}
