package transport

import (
	"net/http"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/ds124wfegd/car-rental/internal/service"
	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	carService service.CarService
}

func NewCarHandler(carService service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

func (h *CarHandler) RegisterRoutes(router *gin.RouterGroup) {
	cars := router.Group("/cars")
	cars.GET("", h.ListCars)
	cars.GET("/:id", h.GetCar)
}

func (h *CarHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	cars := router.Group("/cars")
	cars.GET("", h.ListCars)
	cars.GET("/:id", h.GetCar)
	cars.POST("", h.CreateCar)
	cars.PUT("/:id", h.UpdateCar)
	cars.DELETE("/:id", h.DeleteCar)
}

// ListCars: GET /cars?onlyAvailable=true
func (h *CarHandler) ListCars(c *gin.Context) {
	filter := entity.CarFilter{OnlyAvailable: boolQuery(c, "onlyAvailable")}

	cars, err := h.carService.ListCars(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to load cars")
		return
	}
	c.JSON(http.StatusOK, cars)
}

func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.carService.GetCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load car")
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) CreateCar(c *gin.Context) {
	var in service.CarInput
	if !bindInput(c, &in) {
		return
	}
	in.ImageFile = imageFile(c)

	car, err := h.carService.CreateCar(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err, "Failed to add car")
		return
	}
	c.JSON(http.StatusCreated, car)
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	var in service.CarInput
	if !bindInput(c, &in) {
		return
	}
	in.ImageFile = imageFile(c)

	car, err := h.carService.UpdateCar(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err, "Failed to update car")
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	car, err := h.carService.DeleteCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to delete car")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted", "car": car})
}
