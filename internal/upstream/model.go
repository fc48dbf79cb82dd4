package upstream

// Wire types for the sportsmate backend API. All values are immutable
// snapshots owned by the backend; timestamps stay as the strings the
// backend sends.

type User struct {
	ID              int64    `json:"id"`
	Email           string   `json:"email"`
	Nickname        string   `json:"nickname"`
	Age             int      `json:"age"`
	Gender          string   `json:"gender"`
	Region          string   `json:"region"`
	PreferredSports []string `json:"preferredSports"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

type Post struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	Content             string `json:"content,omitempty"`
	Sport               string `json:"sport"`
	Location            string `json:"location"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	CurrentParticipants int    `json:"currentParticipants"`
	MaxParticipants     int    `json:"maxParticipants"`
	Cost                int    `json:"cost"`
	Gender              string `json:"gender"`
	Status              string `json:"status"`
	AuthorID            int64  `json:"authorId"`
	Author              *User  `json:"author,omitempty"`
	Participants        []User `json:"participants,omitempty"`
	FavoriteCount       int    `json:"favoriteCount"`
	Image               string `json:"image,omitempty"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}

// Favorite is a (user, post) bookmark relation.
type Favorite struct {
	PostID int64 `json:"postId"`
	Post   Post  `json:"post"`
}

// Application is the caller's view of a join request: the post snapshot
// plus the pending/approved/rejected status.
type Application struct {
	Post      Post   `json:"post"`
	Status    string `json:"status"`
	AppliedAt string `json:"appliedAt"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Nickname    string `json:"nickname"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Town        string `json:"town"`
	Sports      string `json:"sports"`
	IsKakaoUser bool   `json:"isKakaoUser"`
}

type CreatePostInput struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	Sport           string `json:"sport"`
	Location        string `json:"location"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	MaxParticipants int    `json:"maxParticipants"`
	Cost            int    `json:"cost"`
	Gender          string `json:"gender"`
	Image           string `json:"image,omitempty"`
}

// UpdatePostInput carries a partial update; nil fields are left untouched
// by the backend.
type UpdatePostInput struct {
	Title           *string `json:"title,omitempty"`
	Content         *string `json:"content,omitempty"`
	Sport           *string `json:"sport,omitempty"`
	Location        *string `json:"location,omitempty"`
	Date            *string `json:"date,omitempty"`
	Time            *string `json:"time,omitempty"`
	MaxParticipants *int    `json:"maxParticipants,omitempty"`
	Cost            *int    `json:"cost,omitempty"`
	Gender          *string `json:"gender,omitempty"`
	Image           *string `json:"image,omitempty"`
}

// UpdateProfileInput carries a partial profile update.
type UpdateProfileInput struct {
	Nickname        *string  `json:"nickname,omitempty"`
	Age             *int     `json:"age,omitempty"`
	Region          *string  `json:"region,omitempty"`
	PreferredSports []string `json:"preferredSports,omitempty"`
}

// PostFilters narrows a post listing. Empty fields are omitted from the
// query string entirely, never sent as empty values.
type PostFilters struct {
	Sport  string `form:"sport"`
	SortBy string `form:"sortBy"`
	Search string `form:"search"`
	Region string `form:"region"`
	Gender string `form:"gender"`
	Date   string `form:"date"`
}

// KakaoConfig is the OAuth client configuration the login page needs to
// build the kakao redirect URL.
type KakaoConfig struct {
	ClientID          string `json:"clientId"`
	RedirectURI       string `json:"redirectUri"`
	SignupRedirectURI string `json:"signupRedirectUri"`
}

// Backend status codes for code/message style endpoints. Only literals
// observed from the backend are named here; anything else reaches callers
// through StatusResult.Code untouched.
const (
	CodeSignupOK          = "USER200"
	CodeEmailAvailable    = "USER202"
	CodeNicknameAvailable = "USER203"
	CodeEmailTaken        = "USER400"
	CodeNicknameTaken     = "USER401"
	CodeUserNotFound      = "USER404"
)

// StatusResult is the decoded body of endpoints that answer with a string
// status code instead of a success flag. These codes are expected business
// outcomes, not errors; callers branch on Code.
type StatusResult struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LoginResult is the discriminated outcome of a login attempt. OK reports
// whether the session was established; on rejection Code/Message carry the
// backend's business code. Rejections are normal control flow, never errors.
type LoginResult struct {
	OK      bool
	User    *User
	Token   string
	Code    string
	Message string
}
