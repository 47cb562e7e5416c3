package statsapi

import "encoding/json"

// The API's nested payloads are decoded once into these types at the fetch
// boundary; downstream stages work on explicit optional fields instead of
// chasing keys through raw maps. Raw copies of the play and event payloads
// are retained for the JSONB detail columns.

// CodeName is the ubiquitous {code, description} pair.
type CodeName struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Sport identifies a league (MLB, Triple-A, ...).
type Sport struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// SportsResponse wraps the /sports endpoint.
type SportsResponse struct {
	Sports []Sport `json:"sports"`
}

// Position describes a player's fielding position.
type Position struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Person is one entry from /sports/{id}/players.
type Person struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"fullName"`
	IsPlayer        *bool     `json:"isPlayer"`
	Active          *bool     `json:"active"`
	PitchHand       *CodeName `json:"pitchHand"`
	BatSide         *CodeName `json:"batSide"`
	BirthDate       string    `json:"birthDate"`
	BirthCity       *string   `json:"birthCity"`
	BirthCountry    *string   `json:"birthCountry"`
	PrimaryPosition *Position `json:"primaryPosition"`
	MLBDebutDate    string    `json:"mlbDebutDate"`
	LastPlayedDate  string    `json:"lastPlayedDate"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps a copy of the raw payload for the details column.
func (p *Person) UnmarshalJSON(data []byte) error {
	type alias Person
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = Person(a)
	p.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// PeopleResponse wraps the season players endpoint.
type PeopleResponse struct {
	People []Person `json:"people"`
}

// TeamEntry is one entry from the /teams endpoint.
type TeamEntry struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Active       bool    `json:"active"`
	LocationName *string `json:"locationName"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps a copy of the raw payload for the details column.
func (t *TeamEntry) UnmarshalJSON(data []byte) error {
	type alias TeamEntry
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*t = TeamEntry(a)
	t.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// TeamsResponse wraps the /teams endpoint.
type TeamsResponse struct {
	Teams []TeamEntry `json:"teams"`
}

// TeamRef references a team inside a schedule entry.
type TeamRef struct {
	Team struct {
		ID int64 `json:"id"`
	} `json:"team"`
}

// ScheduleGame is one game from the /schedule endpoint.
type ScheduleGame struct {
	GamePk       int64  `json:"gamePk"`
	GameType     string `json:"gameType"`
	OfficialDate string `json:"officialDate"`
	Teams        struct {
		Home TeamRef `json:"home"`
		Away TeamRef `json:"away"`
	} `json:"teams"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps a copy of the raw payload for the details column.
func (g *ScheduleGame) UnmarshalJSON(data []byte) error {
	type alias ScheduleGame
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*g = ScheduleGame(a)
	g.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// ScheduleResponse wraps the /schedule endpoint.
type ScheduleResponse struct {
	Dates []struct {
		Date  string         `json:"date"`
		Games []ScheduleGame `json:"games"`
	} `json:"dates"`
}

// Count is the outs/balls/strikes snapshot carried by play events. On a
// pitch event it holds the count after the pitch.
type Count struct {
	Balls   int `json:"balls"`
	Strikes int `json:"strikes"`
	Outs    int `json:"outs"`
}

// PlayResult is the terminal result block of a play.
type PlayResult struct {
	Type      string  `json:"type"`
	EventType *string `json:"eventType"`
	RBI       int     `json:"rbi"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps a copy of the raw payload for the result column.
func (r *PlayResult) UnmarshalJSON(data []byte) error {
	type alias PlayResult
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = PlayResult(a)
	r.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// PlayAbout carries play-level flags and ordering.
type PlayAbout struct {
	AtBatIndex    int  `json:"atBatIndex"`
	HasOut        bool `json:"hasOut"`
	Inning        int  `json:"inning"`
	IsTopInning   bool `json:"isTopInning"`
	IsScoringPlay bool `json:"isScoringPlay"`
}

// PlayerRef references a player by MLB id.
type PlayerRef struct {
	ID int64 `json:"id"`
}

// Matchup names the pitcher and batter for a play.
type Matchup struct {
	Pitcher *PlayerRef `json:"pitcher"`
	Batter  *PlayerRef `json:"batter"`
}

// RunnerMovement describes a baserunner's start and end base during a play.
type RunnerMovement struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// Runner is one runner record inside a play.
type Runner struct {
	Movement RunnerMovement `json:"movement"`
}

// EventDetails is the nested detail block of a play event.
type EventDetails struct {
	Type      *CodeName `json:"type"`
	Call      *CodeName `json:"call"`
	EventType *string   `json:"eventType"`
	IsBall    bool      `json:"isBall"`
	IsStrike  bool      `json:"isStrike"`
	IsOut     bool      `json:"isOut"`
	IsInPlay  bool      `json:"isInPlay"`
}

// PitchCoordinates holds the plate-crossing location in feet, from the
// catcher's perspective.
type PitchCoordinates struct {
	PX *float64 `json:"pX"`
	PZ *float64 `json:"pZ"`
}

// PitchData carries measured pitch attributes.
type PitchData struct {
	Zone        *int             `json:"zone"`
	StartSpeed  *float64         `json:"startSpeed"`
	Coordinates PitchCoordinates `json:"coordinates"`
}

// Event type discriminators used by the play event list.
const (
	EventTypePitch  = "pitch"
	EventTypeAction = "action"
)

// PlayEvent is one entry in a play's event list: a pitch, or an
// administrative action such as a substitution. Non-pitch events may still
// carry a count snapshot.
type PlayEvent struct {
	Type      string        `json:"type"`
	Count     *Count        `json:"count"`
	Details   *EventDetails `json:"details"`
	PitchData *PitchData    `json:"pitchData"`
	Player    *PlayerRef    `json:"player"`

	Raw json.RawMessage `json:"-"`
}

// IsPitch reports whether the event is a thrown pitch.
func (e *PlayEvent) IsPitch() bool {
	return e.Type == EventTypePitch
}

// UnmarshalJSON keeps a copy of the raw payload for the details column.
func (e *PlayEvent) UnmarshalJSON(data []byte) error {
	type alias PlayEvent
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*e = PlayEvent(a)
	e.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// Play is one play from the play-by-play endpoint.
type Play struct {
	Result     PlayResult  `json:"result"`
	About      PlayAbout   `json:"about"`
	Matchup    Matchup     `json:"matchup"`
	PlayEvents []PlayEvent `json:"playEvents"`
	Runners    []Runner    `json:"runners"`

	Raw json.RawMessage `json:"-"`
}

// IsAtBat reports whether the play is a complete plate appearance.
func (p *Play) IsAtBat() bool {
	return p.Result.Type == "atBat"
}

// UnmarshalJSON keeps a copy of the raw payload for the details column.
func (p *Play) UnmarshalJSON(data []byte) error {
	type alias Play
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = Play(a)
	p.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// PlayByPlayResponse wraps the game playByPlay endpoint.
type PlayByPlayResponse struct {
	AllPlays []Play `json:"allPlays"`
}
