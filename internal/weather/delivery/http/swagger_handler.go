package http

// Current godoc
// @Summary Current weather
// @Description Current conditions for outfit context. Defaults to Mumbai when coordinates are absent; unreachable upstreams yield the fallback city.
// @Tags Weather
// @Produce json
// @Param lat query number false "Latitude" default(19.0760)
// @Param lon query number false "Longitude" default(72.8777)
// @Success 200 {object} object{temperature=int,humidity=int,condition=string,location=string,icon=string}
// @Router /api/weather [get]
func (h *WeatherHandler) CurrentDoc() {}
