// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthAccountInactive    = "auth.account_inactive"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthPasswordChanged    = "auth.password_changed"
	KeyAdminAccessDenied      = "admin.access_denied"

	// Applications
	KeyApplicationSubmitted     = "application.submitted"
	KeyApplicationNotFound      = "application.not_found"
	KeyApplicationDuplicate     = "application.duplicate"
	KeyApplicationStatusUpdated = "application.status_updated"
	KeyApplicationDeleted       = "application.deleted"
	KeyRateLimited              = "application.rate_limited"

	// Jobs
	KeyJobCreated  = "job.created"
	KeyJobUpdated  = "job.updated"
	KeyJobDeleted  = "job.deleted"
	KeyJobNotFound = "job.not_found"

	// Blog
	KeyPostCreated  = "post.created"
	KeyPostUpdated  = "post.updated"
	KeyPostDeleted  = "post.deleted"
	KeyPostNotFound = "post.not_found"

	// Testimonials
	KeyTestimonialCreated  = "testimonial.created"
	KeyTestimonialUpdated  = "testimonial.updated"
	KeyTestimonialDeleted  = "testimonial.deleted"
	KeyTestimonialNotFound = "testimonial.not_found"

	// Uploads
	KeyUploadSuccess     = "upload.success"
	KeyUploadInvalidType = "upload.invalid_type"
	KeyUploadTooLarge    = "upload.too_large"

	// Admin users
	KeyAdminUserCreated  = "admin_user.created"
	KeyAdminUserUpdated  = "admin_user.updated"
	KeyAdminUserNotFound = "admin_user.not_found"
)
