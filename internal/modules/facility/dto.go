package facility

type CreateFacilityRequest struct {
	Name     string  `json:"name" validate:"required"`
	Capacity string  `json:"capacity" validate:"required"`
	Lon      float64 `json:"lon" validate:"required"`
	Lat      float64 `json:"lat" validate:"required"`
	Contact  string  `json:"contact" validate:"required"`
	Time     string  `json:"time" validate:"required"`
}
