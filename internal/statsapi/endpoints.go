package statsapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const sportsCacheKey = "sports"

// Sports returns the list of leagues. The response is cached: the list
// changes on the order of years, and several sync stages ask for it.
func (c *Client) Sports(ctx context.Context) ([]Sport, error) {
	if cached, found := c.metadata.Get(sportsCacheKey); found {
		if sports, ok := cached.([]Sport); ok {
			return sports, nil
		}
	}

	var resp SportsResponse
	if err := c.get(ctx, "/sports", nil, &resp); err != nil {
		return nil, err
	}

	c.metadata.SetDefault(sportsCacheKey, resp.Sports)
	return resp.Sports, nil
}

// SeasonPlayers returns every player registered for a league season.
func (c *Client) SeasonPlayers(ctx context.Context, sportID, season int) ([]Person, error) {
	params := url.Values{}
	params.Set("season", strconv.Itoa(season))

	var resp PeopleResponse
	path := fmt.Sprintf("/sports/%d/players", sportID)
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}
	return resp.People, nil
}

// SeasonTeams returns every team registered for a league season.
func (c *Client) SeasonTeams(ctx context.Context, sportID, season int) ([]TeamEntry, error) {
	params := url.Values{}
	params.Set("sportId", strconv.Itoa(sportID))
	params.Set("season", strconv.Itoa(season))

	var resp TeamsResponse
	if err := c.get(ctx, "/teams", params, &resp); err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

// Schedule returns all games scheduled for a league in a calendar year.
func (c *Client) Schedule(ctx context.Context, sportID, season int) ([]ScheduleGame, error) {
	params := url.Values{}
	params.Set("sportId", strconv.Itoa(sportID))
	params.Set("startDate", fmt.Sprintf("01/01/%d", season))
	params.Set("endDate", fmt.Sprintf("12/31/%d", season))

	var resp ScheduleResponse
	if err := c.get(ctx, "/schedule", params, &resp); err != nil {
		return nil, err
	}

	var games []ScheduleGame
	for _, d := range resp.Dates {
		games = append(games, d.Games...)
	}
	return games, nil
}

// PlayByPlay returns the full play list for one game.
func (c *Client) PlayByPlay(ctx context.Context, gameMLBID int64) ([]Play, error) {
	var resp PlayByPlayResponse
	path := fmt.Sprintf("/game/%d/playByPlay", gameMLBID)
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.AllPlays, nil
}
