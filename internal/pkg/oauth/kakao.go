package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
)

// 카카오는 x/oauth2 에 프리셋 엔드포인트가 없다
var kakaoEndpoint = oauth2.Endpoint{
	AuthURL:  "https://kauth.kakao.com/oauth/authorize",
	TokenURL: "https://kauth.kakao.com/oauth/token",
}

type KakaoUser struct {
	ID        string
	Nickname  string
	Email     string
	AvatarURL string
}

// kakaoUserResponse /v2/user/me 응답 구조
type kakaoUserResponse struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

type KakaoOAuth struct {
	config *oauth2.Config
}

func NewKakaoOAuth(clientID, clientSecret, redirectURI string) *KakaoOAuth {
	return &KakaoOAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"profile_nickname", "profile_image", "account_email"},
			Endpoint:     kakaoEndpoint,
		},
	}
}

// GetAuthURL 카카오 인가 URL
func (k *KakaoOAuth) GetAuthURL(state string) string {
	return k.config.AuthCodeURL(state)
}

// Exchange 인가 코드로 access token 교환
func (k *KakaoOAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return k.config.Exchange(ctx, code)
}

// GetUser 카카오 사용자 정보 조회
func (k *KakaoOAuth) GetUser(ctx context.Context, token *oauth2.Token) (*KakaoUser, error) {
	client := k.config.Client(ctx, token)

	resp, err := client.Get("https://kapi.kakao.com/v2/user/me")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("kakao api error: %s", string(body))
	}

	var raw kakaoUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	return &KakaoUser{
		ID:        strconv.FormatInt(raw.ID, 10),
		Nickname:  raw.KakaoAccount.Profile.Nickname,
		Email:     raw.KakaoAccount.Email,
		AvatarURL: raw.KakaoAccount.Profile.ProfileImageURL,
	}, nil
}
