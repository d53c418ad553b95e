package testimonial

type CreateTestimonialRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Rating   int    `json:"rating" binding:"required,gte=1,lte=5"`
	Text     string `json:"text" binding:"required"`
}
