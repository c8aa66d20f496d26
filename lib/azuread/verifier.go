package azuread

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talento-backend/config"
	"talento-backend/db"
	usersstore "talento-backend/lib/users/store"
	initchecker "talento-backend/lib/utils/init-checker"
	"talento-backend/models"
	userapimodels "talento-backend/models/api/user"
)

type Provider interface {
	// Authenticate valida el encabezado Authorization y resuelve el usuario
	// interno habilitado; un token válido sin usuario activo es Forbidden.
	Authenticate(authHeader string) (userapimodels.UserView, error)
}

var Instance Provider

func NewHandler() error {
	cfg := config.Conf.AzureAD
	ttl := time.Duration(cfg.KeysCacheTTLMin) * time.Minute
	options := keyfunc.Options{
		RefreshInterval: ttl,
		Client: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSec) * time.Second,
		},
		RefreshErrorHandler: func(err error) {
			log.WithError(err).Error("error refrescando las claves de Azure AD")
		},
	}
	jwksV1, err := keyfunc.Get(fmt.Sprintf(cfg.KeysURLv1, cfg.TenantID), options)
	if err != nil {
		return errors.Wrap(err, "error cargando las claves v1 de Azure AD")
	}
	jwksV2, err := keyfunc.Get(fmt.Sprintf(cfg.KeysURLv2, cfg.TenantID), options)
	if err != nil {
		return errors.Wrap(err, "error cargando las claves v2 de Azure AD")
	}
	instance := impl{
		jwksV1:   jwksV1,
		jwksV2:   jwksV2,
		issuerV1: fmt.Sprintf("https://sts.windows.net/%s/", cfg.TenantID),
		issuerV2: fmt.Sprintf("https://login.microsoftonline.com/%s/v2.0", cfg.TenantID),
		audiences: []string{
			cfg.ClientID,
			"api://" + cfg.ClientID,
		},
		userStore: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"userStore", instance.userStore,
	)
	Instance = instance
	return nil
}

type impl struct {
	jwksV1    *keyfunc.JWKS
	jwksV2    *keyfunc.JWKS
	issuerV1  string
	issuerV2  string
	audiences []string
	userStore usersstore.Provider
}

func (i impl) Authenticate(authHeader string) (userapimodels.UserView, error) {
	rawToken, err := extractBearer(authHeader)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	claims, err := i.verify(rawToken)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	email, err := extractEmail(claims)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	rec, err := i.userStore.FindByEmail(email)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	if rec == nil || !rec.Activo {
		return userapimodels.UserView{}, errors.Wrapf(models.ErrForbidden, "usuario no habilitado: %s", email)
	}
	return userapimodels.UserConvert(*rec), nil
}

func (i impl) verify(rawToken string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(rawToken, &claims, i.keyfuncFor(rawToken),
		jwt.WithValidMethods([]string{"RS256"}),
	)
	if err != nil || !token.Valid {
		return nil, errors.Wrap(models.ErrUnauthorized, "token inválido")
	}
	issuer, _ := claims.GetIssuer()
	if issuer != i.issuerV1 && issuer != i.issuerV2 {
		return nil, errors.Wrapf(models.ErrUnauthorized, "emisor no reconocido: %q", issuer)
	}
	audiences, err := claims.GetAudience()
	if err != nil || !audienceMatches(audiences, i.audiences) {
		return nil, errors.Wrap(models.ErrUnauthorized, "audiencia no reconocida")
	}
	return claims, nil
}

// keyfuncFor elige el documento de claves por el emisor declarado; la firma
// se valida después con ese documento.
func (i impl) keyfuncFor(rawToken string) jwt.Keyfunc {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	_, _, err := parser.ParseUnverified(rawToken, &claims)
	if err == nil {
		if issuer, issErr := claims.GetIssuer(); issErr == nil && issuer == i.issuerV1 {
			return i.jwksV1.Keyfunc
		}
	}
	return i.jwksV2.Keyfunc
}

func extractBearer(authHeader string) (string, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.Wrap(models.ErrUnauthorized, "falta el token bearer")
	}
	return parts[1], nil
}

// extractEmail resuelve el correo del token probando los claims en orden:
// email, preferred_username, upn, unique_name.
func extractEmail(claims jwt.MapClaims) (string, error) {
	for _, name := range []string{"email", "preferred_username", "upn", "unique_name"} {
		if raw, ok := claims[name]; ok {
			if value, ok := raw.(string); ok && strings.Contains(value, "@") {
				return strings.ToLower(value), nil
			}
		}
	}
	return "", errors.Wrap(models.ErrUnauthorized, "el token no identifica un correo")
}

func audienceMatches(tokenAudiences jwt.ClaimStrings, accepted []string) bool {
	for _, audience := range tokenAudiences {
		for _, candidate := range accepted {
			if audience == candidate {
				return true
			}
		}
	}
	return false
}
