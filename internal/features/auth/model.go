package auth

import "github.com/minjaekim/sportsmate-web/internal/upstream"

type LoginRequest struct {
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	RememberEmail bool   `json:"rememberEmail"`
}

type SignupRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Nickname        string `json:"nickname" binding:"required"`
	Age             int    `json:"age" binding:"required"`
	Gender          string `json:"gender" binding:"required"`
	Sido            string `json:"sido" binding:"required"`
	Sigungu         string `json:"sigungu" binding:"required"`
	Sport           string `json:"sport" binding:"required"`
	IsKakaoUser     bool   `json:"isKakaoUser"`
}

func (r *SignupRequest) toInput() upstream.SignupInput {
	return upstream.SignupInput{
		Email:       r.Email,
		Password:    r.Password,
		Nickname:    r.Nickname,
		Age:         r.Age,
		Gender:      r.Gender,
		Town:        r.Sido + " " + r.Sigungu,
		Sports:      r.Sport,
		IsKakaoUser: r.IsKakaoUser,
	}
}

type CheckEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type CheckNicknameRequest struct {
	Nickname string `json:"nickname" binding:"required"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type SessionResponse struct {
	LoggedIn        bool   `json:"loggedIn"`
	RememberedEmail string `json:"rememberedEmail,omitempty"`
}
