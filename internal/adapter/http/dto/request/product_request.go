package request

type ProductRequest struct {
	Name string `json:"name" binding:"required"`
}
