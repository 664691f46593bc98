// Package swipepb holds the wire types and gRPC bindings of the swipe
// service. Messages travel as JSON through the codec registered in codec.go.
package swipepb

// Profile is a candidate card or the caller's own profile.
type Profile struct {
	Id            string   `json:"id"`
	DisplayName   string   `json:"display_name"`
	Age           int32    `json:"age"`
	Profession    string   `json:"profession,omitempty"`
	PhotoRefs     []string `json:"photo_refs,omitempty"`
	SeekingAgeMin int32    `json:"seeking_age_min,omitempty"`
	SeekingAgeMax int32    `json:"seeking_age_max,omitempty"`
}

type StartSessionRequest struct {
	UserId string `json:"user_id" validate:"required,max=64"`
}

func (x *StartSessionRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type SessionRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid4"`
}

func (x *SessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

// SessionResponse carries the pending queue, head first.
type SessionResponse struct {
	SessionId  string     `json:"session_id"`
	Candidates []*Profile `json:"candidates"`
}

type DecideRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid4"`
	ProfileId string `json:"profile_id" validate:"required,max=64"`
	Liked     bool   `json:"liked"`
}

func (x *DecideRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *DecideRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *DecideRequest) GetLiked() bool {
	if x != nil {
		return x.Liked
	}
	return false
}

// Outcome values.
const (
	OutcomeNone    = "none"
	OutcomeMatched = "matched"
)

type DecideResponse struct {
	Outcome          string   `json:"outcome"`
	MatchedProfileId string   `json:"matched_profile_id,omitempty"`
	Next             *Profile `json:"next,omitempty"`
}

type CheckMatchRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid4"`
	ProfileId string `json:"profile_id" validate:"required,max=64"`
}

func (x *CheckMatchRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *CheckMatchRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type CheckMatchResponse struct {
	Matched bool `json:"matched"`
}

// SaveSettingsRequest updates the session owner's profile. Unset fields are
// left as they are.
type SaveSettingsRequest struct {
	SessionId     string   `json:"session_id" validate:"required,uuid4"`
	DisplayName   *string  `json:"display_name,omitempty" validate:"omitempty,min=1,max=128"`
	Age           *int32   `json:"age,omitempty" validate:"omitempty,gte=18,lte=120"`
	Profession    *string  `json:"profession,omitempty" validate:"omitempty,max=128"`
	PhotoRefs     []string `json:"photo_refs,omitempty" validate:"omitempty,min=1,max=3,dive,required,max=512"`
	SeekingAgeMin *int32   `json:"seeking_age_min,omitempty" validate:"omitempty,gte=18,lte=120"`
	SeekingAgeMax *int32   `json:"seeking_age_max,omitempty" validate:"omitempty,gte=18,lte=120"`
}

type SaveSettingsResponse struct {
	Profile    *Profile   `json:"profile"`
	Candidates []*Profile `json:"candidates"`
}

type RegisterProfileRequest struct {
	Email         string   `json:"email" validate:"required,email,max=128"`
	Password      string   `json:"password" validate:"required,min=8,max=72"`
	DisplayName   string   `json:"display_name" validate:"required,max=128"`
	Age           int32    `json:"age" validate:"gte=18,lte=120"`
	Profession    string   `json:"profession,omitempty" validate:"max=128"`
	PhotoRefs     []string `json:"photo_refs" validate:"min=1,max=3,dive,required,max=512"`
	SeekingAgeMin int32    `json:"seeking_age_min,omitempty" validate:"omitempty,gte=18,lte=120"`
	SeekingAgeMax int32    `json:"seeking_age_max,omitempty" validate:"omitempty,gte=18,lte=120"`
}

type RegisterProfileResponse struct {
	Profile *Profile `json:"profile"`
}

type EndSessionResponse struct{}

type ListLikedYouRequest struct {
	RecipientUserId string  `json:"recipient_user_id" validate:"required,max=64"`
	PaginationToken *string `json:"pagination_token,omitempty"`
}

func (x *ListLikedYouRequest) GetRecipientUserId() string {
	if x != nil {
		return x.RecipientUserId
	}
	return ""
}

func (x *ListLikedYouRequest) GetPaginationToken() string {
	if x != nil && x.PaginationToken != nil {
		return *x.PaginationToken
	}
	return ""
}

type ListLikedYouResponse struct {
	Likers              []*ListLikedYouResponse_Liker `json:"likers"`
	NextPaginationToken *string                       `json:"next_pagination_token,omitempty"`
}

func (x *ListLikedYouResponse) GetNextPaginationToken() string {
	if x != nil && x.NextPaginationToken != nil {
		return *x.NextPaginationToken
	}
	return ""
}

type ListLikedYouResponse_Liker struct {
	ActorId       string   `json:"actor_id"`
	UnixTimestamp uint64   `json:"unix_timestamp"`
	Profile       *Profile `json:"profile,omitempty"`
}

type CountLikedYouRequest struct {
	RecipientUserId string `json:"recipient_user_id" validate:"required,max=64"`
}

func (x *CountLikedYouRequest) GetRecipientUserId() string {
	if x != nil {
		return x.RecipientUserId
	}
	return ""
}

type CountLikedYouResponse struct {
	Count uint64 `json:"count"`
}
