package domain

import "time"

// User represents an authenticated account in the system.
type User struct {
	Syncable
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"` // Stored hashed, filter from API responses
	DisplayName  string    `json:"display_name"`
	Onboarded    bool      `json:"onboarded"`
	Occupation   string    `json:"occupation,omitempty"`
	Age          int       `json:"age,omitempty"`
	Focus        string    `json:"focus,omitempty"`
	LastLoginAt  time.Time `json:"last_login_at"`
}

// Name returns the best available name to display for the user.
// Prefers DisplayName, falls back to email.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

// Session represents an active user session with refresh token.
// Each device gets its own session.
type Session struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	RefreshTokenHash string    `json:"refresh_token_hash,omitempty"` // Stored hashed, filter from API responses
	ExpiresAt        time.Time `json:"expires_at"`
	CreatedAt        time.Time `json:"created_at"`
	LastSeenAt       time.Time `json:"last_seen_at"`
	IPAddress        string    `json:"ip_address,omitempty"`

	// Device information, structured data from the client
	DeviceType      string `json:"device_type"`               // mobile, tablet, desktop, web
	Platform        string `json:"platform"`                  // iOS, Android, Windows, macOS, Linux, Web
	PlatformVersion string `json:"platform_version"`          // 17.2, 14.0, 11, etc.
	ClientName      string `json:"client_name"`               // DayGrid Web, DayGrid Mobile
	ClientVersion   string `json:"client_version"`            // 1.0.0
	BrowserName     string `json:"browser_name,omitempty"`    // Chrome, Firefox, Safari (web only)
	BrowserVersion  string `json:"browser_version,omitempty"` // 120.0.6099.109 (web only)
}

// Touch updates the session's last seen timestamp.
func (s *Session) Touch() {
	s.LastSeenAt = time.Now()
}

// IsExpired checks if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// DisplayName returns a human-readable description of the device.
func (s *Session) DisplayName() string {
	if s.Platform != "" {
		if s.PlatformVersion != "" {
			return s.Platform + " " + s.PlatformVersion
		}
		return s.Platform
	}

	if s.ClientName != "" {
		if s.ClientVersion != "" {
			return s.ClientName + " " + s.ClientVersion
		}
		return s.ClientName
	}

	return "Unknown Device"
}
