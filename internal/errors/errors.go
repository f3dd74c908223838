package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("niet gevonden")
	// ErrInvalidCredentials is returned on a bad email/password combination.
	ErrInvalidCredentials = errors.New("ongeldige inloggegevens")
	// ErrAccountInactive is returned when a deactivated user tries to log in.
	ErrAccountInactive = errors.New("account is gedeactiveerd")
	// ErrEmailTaken is returned when a user email is already registered.
	ErrEmailTaken = errors.New("e-mailadres is al in gebruik")
	// ErrTypeExists is returned when an artwork type name already exists
	// (case-insensitive).
	ErrTypeExists = errors.New("dit type bestaat al")
	// ErrNameRequired is returned when a required name field is missing.
	ErrNameRequired = errors.New("Naam is verplicht.")
	// ErrTitleRequired is returned when an artwork is created without a title.
	ErrTitleRequired = errors.New("Titel is verplicht.")
	// ErrArtistRequired is returned when an artwork has no artist reference.
	ErrArtistRequired = errors.New("Kunstenaar is verplicht.")
	// ErrTypeRequired is returned when an artwork has no type reference.
	ErrTypeRequired = errors.New("Type is verplicht.")
	// ErrInvalidReportType is returned for an unknown report type parameter.
	ErrInvalidReportType = errors.New("ongeldig rapporttype")
	// ErrInvalidRole is returned when a user is created with an unknown role.
	ErrInvalidRole = errors.New("ongeldige rol")
	// ErrSelfDelete is returned when an admin tries to delete their own account.
	ErrSelfDelete = errors.New("je kunt je eigen account niet verwijderen")
	// ErrForbidden is returned on a role or ownership mismatch.
	ErrForbidden = errors.New("geen toegang")
)

// ReferencedError blocks deletion of an artist or location that still has
// artworks linked to it. The count is reported back to the client.
type ReferencedError struct {
	ArtworkCount int64
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("kan niet verwijderen: er zijn nog %d kunstwerken gekoppeld", e.ArtworkCount)
}

// ErrorResponse is the standard error body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReferencedErrorResponse is the delete-guard error body, carrying the number
// of artworks that block the deletion.
type ReferencedErrorResponse struct {
	Error        string `json:"error"`
	ArtworkCount int64  `json:"artworkCount"`
}

// StatusFor maps a domain error to its HTTP status code. Unknown errors map
// to 500; the caller is expected to log those and send a generic body.
func StatusFor(err error) int {
	var ref *ReferencedError
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrAccountInactive):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrTypeExists),
		errors.Is(err, ErrNameRequired), errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrArtistRequired), errors.Is(err, ErrTypeRequired),
		errors.Is(err, ErrInvalidReportType), errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrSelfDelete), errors.As(err, &ref):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
