package session

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/hbrar/intervu/internal/models"
)

const cookieName = "intervu_session"

var errNoInterview = errors.New("token carries no interview state")

type claims struct {
	jwt.RegisteredClaims
	Interview *models.Interview `json:"interview,omitempty"`
}

// Codec signs the whole interview state into an HS256 token stored in a
// cookie. There is no server-side session store; the cookie is the session.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

func (s *Codec) Encode(iv *models.Interview) (string, error) {
	now := time.Now()
	c := &claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Interview: iv,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

func (s *Codec) Decode(raw string) (*models.Interview, error) {
	c := &claims{}
	tok, err := jwt.ParseWithClaims(raw, c, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	if c.Interview == nil {
		return nil, errNoInterview
	}
	return c.Interview, nil
}

// Read returns the interview carried by the request cookie, or nil when the
// cookie is absent, expired, or fails verification. A broken session is the
// same as no session.
func (s *Codec) Read(c *gin.Context) *models.Interview {
	raw, err := c.Cookie(cookieName)
	if err != nil {
		return nil
	}
	iv, err := s.Decode(raw)
	if err != nil {
		return nil
	}
	return iv
}

func (s *Codec) Write(c *gin.Context, iv *models.Interview) error {
	token, err := s.Encode(iv)
	if err != nil {
		return err
	}
	c.SetCookie(cookieName, token, int(s.ttl.Seconds()), "/", "", false, true)
	return nil
}

func (s *Codec) Clear(c *gin.Context) {
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
}
