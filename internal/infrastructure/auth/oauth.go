package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/revibako/backend/internal/infrastructure/config"
)

var ErrUnknownProvider = errors.New("unknown oauth provider")

// Profile é o perfil mínimo retornado pelo provider OAuth
type Profile struct {
	Subject   string
	Email     string
	Name      string
	AvatarURL string
}

// OAuthProvider encapsula a configuração de um provider e a busca do perfil
type OAuthProvider struct {
	Name   string
	config *oauth2.Config
}

// OAuthService resolve providers por nome (google, github)
type OAuthService struct {
	providers map[string]*OAuthProvider
}

// NewOAuthService cria o serviço com os providers configurados
func NewOAuthService(cfg *config.OAuthConfig) *OAuthService {
	providers := map[string]*OAuthProvider{
		"google": {
			Name: "google",
			config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				RedirectURL:  cfg.RedirectURL,
				Scopes:       []string{"openid", "email", "profile"},
				Endpoint:     endpoints.Google,
			},
		},
		"github": {
			Name: "github",
			config: &oauth2.Config{
				ClientID:     cfg.GitHubClientID,
				ClientSecret: cfg.GitHubClientSecret,
				RedirectURL:  cfg.RedirectURL,
				Scopes:       []string{"read:user", "user:email"},
				Endpoint:     endpoints.GitHub,
			},
		},
	}
	return &OAuthService{providers: providers}
}

// Provider retorna o provider pelo nome
func (s *OAuthService) Provider(name string) (*OAuthProvider, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return p, nil
}

// AuthCodeURL monta a URL de autorização com o state fornecido
func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange troca o authorization code por um access token
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.config.Exchange(ctx, code)
}

// FetchProfile busca o perfil do usuário no provider
func (p *OAuthProvider) FetchProfile(ctx context.Context, token *oauth2.Token) (*Profile, error) {
	client := p.config.Client(ctx, token)

	switch p.Name {
	case "google":
		return fetchGoogleProfile(ctx, client)
	case "github":
		return fetchGitHubProfile(ctx, client)
	default:
		return nil, ErrUnknownProvider
	}
}

func fetchGoogleProfile(ctx context.Context, client *http.Client) (*Profile, error) {
	var payload struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := getJSON(ctx, client, "https://www.googleapis.com/oauth2/v2/userinfo", &payload); err != nil {
		return nil, err
	}

	return &Profile{
		Subject:   payload.ID,
		Email:     payload.Email,
		Name:      payload.Name,
		AvatarURL: payload.Picture,
	}, nil
}

func fetchGitHubProfile(ctx context.Context, client *http.Client) (*Profile, error) {
	var payload struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := getJSON(ctx, client, "https://api.github.com/user", &payload); err != nil {
		return nil, err
	}

	email := payload.Email
	if email == "" {
		// GitHub pode não expor o email no perfil público
		email = fmt.Sprintf("%s@users.noreply.github.com", payload.Login)
	}

	name := payload.Name
	if name == "" {
		name = payload.Login
	}

	return &Profile{
		Subject:   strconv.FormatInt(payload.ID, 10),
		Email:     email,
		Name:      name,
		AvatarURL: payload.AvatarURL,
	}, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
