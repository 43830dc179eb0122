package response_models

type AccountSummary struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	TwitchUsername *string `json:"twitchUsername,omitempty"`
}

type AuthStatusResponse struct {
	IsAuthenticated bool            `json:"isAuthenticated"`
	User            *AccountSummary `json:"user,omitempty"`
}

type TwitchAuthURLResponse struct {
	AuthURL string `json:"authUrl"`
}
