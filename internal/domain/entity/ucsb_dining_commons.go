package entity

// UCSBDiningCommons is a dining hall, keyed by its short code (e.g. "ortega").
type UCSBDiningCommons struct {
	Code           string  `json:"code" query:"code" validate:"required,max=32"`
	Name           string  `json:"name" query:"name" validate:"required"`
	HasSackMeal    bool    `json:"hasSackMeal" query:"hasSackMeal"`
	HasTakeOutMeal bool    `json:"hasTakeOutMeal" query:"hasTakeOutMeal"`
	HasDiningCam   bool    `json:"hasDiningCam" query:"hasDiningCam"`
	Latitude       float64 `json:"latitude" query:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64 `json:"longitude" query:"longitude" validate:"gte=-180,lte=180"`
}
