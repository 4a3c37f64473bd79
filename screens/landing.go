package screens

// Landing is the welcome screen. It has no form.
type Landing struct {
	nav Navigator
}

// Content is what the landing screen shows.
type Content struct {
	Title    string   `json:"title"`
	Features []string `json:"features"`
}

func NewLanding(nav Navigator) *Landing {
	return &Landing{nav: orNavigator(nav)}
}

func (s *Landing) Content() Content {
	return Content{
		Title: "Welcome!",
		Features: []string{
			"Split bills easily",
			"Track group expenses",
			"Settle up instantly",
		},
	}
}

func (s *Landing) Login()  { s.nav.Replace(RouteLogin) }
func (s *Landing) SignUp() { s.nav.Replace(RouteSignUp) }
