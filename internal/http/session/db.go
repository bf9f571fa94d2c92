package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is a database-backed token row; the cookie only carries its ID.
type Session struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	Token     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Session) TableName() string { return "storefront_sessions" }

const ctxKeyToken = "session_token"

// DBStore keeps tokens server-side. The table is created by
// cmd/tools/createtable, not by AutoMigrate.
type DBStore struct {
	db     *gorm.DB
	name   string
	secure bool
	maxAge time.Duration
}

func NewDBStore(db *gorm.DB, secure bool, maxAge time.Duration) *DBStore {
	return &DBStore{db: db, name: CookieName, secure: secure, maxAge: maxAge}
}

func (s *DBStore) Load(c *gin.Context) (string, error) {
	// Save/Clear earlier in the same request win over the incoming cookie.
	if v, ok := c.Get(ctxKeyToken); ok {
		tok, _ := v.(string)
		return tok, nil
	}

	id, err := c.Cookie(s.name)
	if err != nil || id == "" {
		return "", nil
	}
	var sess Session
	err = s.db.WithContext(c.Request.Context()).First(&sess, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.setCookie(c, "", -1)
		return "", nil
	}
	if err != nil {
		return "", err
	}
	c.Set(ctxKeyToken, sess.Token)
	return sess.Token, nil
}

// Save always issues a new session ID and drops the previous row.
func (s *DBStore) Save(c *gin.Context, token string) error {
	ctx := c.Request.Context()
	if old, err := c.Cookie(s.name); err == nil && old != "" {
		_ = s.db.WithContext(ctx).Delete(&Session{}, "id = ?", old).Error
	}

	now := time.Now()
	sess := Session{ID: uuid.NewString(), Token: token, CreatedAt: now, UpdatedAt: now}
	err := s.db.WithContext(ctx).Create(&sess).Error
	if isDuplicateKey(err) {
		sess.ID = uuid.NewString()
		err = s.db.WithContext(ctx).Create(&sess).Error
	}
	if err != nil {
		return err
	}

	s.setCookie(c, sess.ID, int(s.maxAge.Seconds()))
	c.Set(ctxKeyToken, token)
	return nil
}

func (s *DBStore) Clear(c *gin.Context) error {
	var err error
	if id, cerr := c.Cookie(s.name); cerr == nil && id != "" {
		err = s.db.WithContext(c.Request.Context()).Delete(&Session{}, "id = ?", id).Error
	}
	s.setCookie(c, "", -1)
	c.Set(ctxKeyToken, "")
	return err
}

func (s *DBStore) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.name, value, maxAge, "/", "", s.secure, true)
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
