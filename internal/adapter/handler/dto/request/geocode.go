package request

type GeocodeRequest struct {
	Address string `form:"address"`
	City    string `form:"city"`
}
