package hubapi

import "time"

// ErrorResponse is the wire shape of failure responses, used for JSON
// unmarshaling on the client side. Server code uses APIError.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Auth
// ============================================================================

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

type UpdateNameRequest struct {
	Name string `json:"name"`
}

// UserResponse is the public view of an account. The password hash and reset
// token state never leave the server.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Tier      string    `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusResponse acknowledges an operation with no payload.
type StatusResponse struct {
	Status string `json:"status"`
}

// ============================================================================
// Clients
// ============================================================================

type ClientRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	ArtistName string `json:"artist_name,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
}

type ClientResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	ArtistName string    `json:"artist_name,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ============================================================================
// Projects
// ============================================================================

type ProjectRequest struct {
	ClientID    string `json:"client_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

type ProjectResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	Client      *ClientResponse `json:"client,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ============================================================================
// Songs and versions
// ============================================================================

type VersionRequest struct {
	Name    string `json:"name"`
	FileURL string `json:"file_url,omitempty"`
}

type SongRequest struct {
	Name     string           `json:"name"`
	Versions []VersionRequest `json:"versions,omitempty"`
}

type RenameSongRequest struct {
	Name string `json:"name"`
}

type VersionResponse struct {
	ID        string    `json:"id"`
	SongID    string    `json:"song_id"`
	Name      string    `json:"name"`
	FileURL   string    `json:"file_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SongResponse struct {
	ID        string            `json:"id"`
	ProjectID string            `json:"project_id"`
	Name      string            `json:"name"`
	Versions  []VersionResponse `json:"versions"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ============================================================================
// Uploads
// ============================================================================

type UploadResponse struct {
	FileURL string `json:"file_url"`
}

// ============================================================================
// Share links and comments
// ============================================================================

type ShareLinkResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	ShareURL  string    `json:"share_url,omitempty"`
	Active    bool      `json:"active"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type SharedProjectResponse struct {
	Project  ProjectResponse   `json:"project"`
	Songs    []SongResponse    `json:"songs"`
	Comments []CommentResponse `json:"comments"`
}

type CommentRequest struct {
	VersionID string `json:"version_id"`
	Author    string `json:"author"`
	Email     string `json:"email,omitempty"`
	Content   string `json:"content"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	VersionID string    `json:"version_id"`
	Author    string    `json:"author"`
	Email     string    `json:"email,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================================================================
// Usage
// ============================================================================

type TierLimitsResponse struct {
	MaxClients   int     `json:"max_clients"`
	MaxProjects  int     `json:"max_projects"`
	MaxStorageMB int     `json:"max_storage_mb"`
	PriceEUR     float64 `json:"price_eur"`
}

type UsageResponse struct {
	Tier            string             `json:"tier"`
	CanAddClient    bool               `json:"can_add_client"`
	CanAddProject   bool               `json:"can_add_project"`
	HasStorageSpace bool               `json:"has_storage_space"`
	ClientsUsed     int                `json:"clients_used"`
	ProjectsUsed    int                `json:"projects_used"`
	StorageUsedMB   int                `json:"storage_used_mb"`
	Limits          TierLimitsResponse `json:"limits"`
}
