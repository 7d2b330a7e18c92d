package behavior

// ParallaxFrame is the hero and background styling for one scroll offset
type ParallaxFrame struct {
	HeroTranslateY       float64
	HeroOpacity          float64
	BackgroundTranslateY float64
}

// ParallaxAt computes the parallax styling at a vertical scroll offset.
// Hero opacity fades linearly and bottoms out at zero after FadeDistance.
func (s Settings) ParallaxAt(offset float64) ParallaxFrame {
	opacity := 1.0
	if s.FadeDistance > 0 {
		opacity = 1 - offset/s.FadeDistance
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return ParallaxFrame{
		HeroTranslateY:       offset * s.HeroFactor,
		HeroOpacity:          opacity,
		BackgroundTranslateY: offset * s.BackgroundFactor,
	}
}
