package transport

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/pkg/storage"
	"github.com/ds124wfegd/car-rental/internal/service"
	"github.com/ds124wfegd/car-rental/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var notFoundMessages = []struct {
	err     error
	message string
}{
	{entity.ErrCarNotFound, "Car not found"},
	{entity.ErrBookingNotFound, "Booking not found"},
	{entity.ErrBlogPostNotFound, "Blog post not found"},
	{entity.ErrTestimonialNotFound, "Not found"},
	{entity.ErrSubscriberNotFound, "Subscriber not found."},
	{entity.ErrAdminNotFound, "Admin not found"},
	{entity.ErrCustomerNotFound, "User not found"},
}

// respondError maps domain errors onto status codes. Anything unexpected is
// logged and answered with the generic fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": verrs})
		return
	}

	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			c.JSON(http.StatusNotFound, gin.H{"message": nf.message})
			return
		}
	}

	switch {
	case errors.Is(err, entity.ErrInvalidBookingStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value", "allowed": entity.BookingStatuses})
	case errors.Is(err, entity.ErrInvalidImage), errors.Is(err, storage.ErrFileTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, entity.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, entity.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Old password is wrong"})
	case errors.Is(err, entity.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered."})
	case errors.Is(err, entity.ErrAdminAlreadySeeded):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Admin already exists"})
	case errors.Is(err, entity.ErrSelfDelete):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You cannot delete yourself"})
	case errors.Is(err, entity.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"route":  c.FullPath(),
		}).Error(fallback)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}

// bindInput reads JSON or form bodies into the same input struct.
func bindInput(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBind(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return false
	}
	return true
}

// imageFile is the optional `image` part of a multipart request.
func imageFile(c *gin.Context) *multipart.FileHeader {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return fh
}

func boolQuery(c *gin.Context, key string) bool {
	return service.FormValue(c.Query(key)).Bool()
}
