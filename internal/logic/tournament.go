package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/strategium/pairings/internal/models"
)

type tournamentService struct {
	pg PgPool
}

func NewTournamentService(pg PgPool) TournamentService {
	return &tournamentService{pg: pg}
}

// CreateTournament stores a tournament with its teams and ordered rosters in
// a single transaction.
func (s *tournamentService) CreateTournament(ctx context.Context, req *models.CreateTournamentRequest) (*models.Tournament, error) {
	tx, err := s.pg.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	t := &models.Tournament{ID: uuid.NewString(), Name: req.Name}
	if err := tx.QueryRow(ctx,
		`INSERT INTO tournaments (id, name) VALUES ($1, $2) RETURNING created_at`,
		t.ID, t.Name).Scan(&t.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert tournament: %w", err)
	}

	for i, teamReq := range req.Teams {
		team := models.Team{ID: uuid.NewString(), Name: teamReq.Name}
		if _, err := tx.Exec(ctx,
			`INSERT INTO teams (id, tournament_id, position, name) VALUES ($1, $2, $3, $4)`,
			team.ID, t.ID, i, team.Name); err != nil {
			return nil, fmt.Errorf("insert team %q: %w", team.Name, err)
		}

		for j, p := range teamReq.Players {
			player := models.Player{ID: uuid.NewString(), Name: p.Name, Army: p.Army, Archetype: p.Archetype}
			if _, err := tx.Exec(ctx,
				`INSERT INTO players (id, team_id, position, name, army, archetype) VALUES ($1, $2, $3, $4, $5, $6)`,
				player.ID, team.ID, j, player.Name, player.Army, player.Archetype); err != nil {
				return nil, fmt.Errorf("insert player %q: %w", player.Name, err)
			}
			team.Players = append(team.Players, player)
		}
		t.Teams = append(t.Teams, team)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return t, nil
}

func (s *tournamentService) GetTournaments(ctx context.Context) ([]models.Tournament, error) {
	rows, err := s.pg.Query(ctx, `SELECT id, name, created_at FROM tournaments ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	defer rows.Close()

	list := []models.Tournament{}
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].Teams, err = s.loadTeams(ctx, list[i].ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	t := &models.Tournament{}
	err := s.pg.QueryRow(ctx,
		`SELECT id, name, created_at FROM tournaments WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("tournament %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}

	if t.Teams, err = s.loadTeams(ctx, id); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTeamRoster returns the team's player names in roster order.
func (s *tournamentService) GetTeamRoster(ctx context.Context, teamID string) ([]string, error) {
	var exists bool
	if err := s.pg.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM teams WHERE id = $1)`, teamID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("lookup team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("team %s: %w", teamID, ErrNotFound)
	}

	rows, err := s.pg.Query(ctx, `SELECT name FROM players WHERE team_id = $1 ORDER BY position`, teamID)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *tournamentService) loadTeams(ctx context.Context, tournamentID string) ([]models.Team, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT t.id, t.name, p.id, p.name, p.army, p.archetype
		FROM teams t
		LEFT JOIN players p ON p.team_id = t.id
		WHERE t.tournament_id = $1
		ORDER BY t.position, p.position
	`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var (
			teamID, teamName                string
			playerID, name, army, archetype *string
		)
		if err := rows.Scan(&teamID, &teamName, &playerID, &name, &army, &archetype); err != nil {
			return nil, err
		}
		if len(teams) == 0 || teams[len(teams)-1].ID != teamID {
			teams = append(teams, models.Team{ID: teamID, Name: teamName, Players: []models.Player{}})
		}
		if playerID == nil {
			continue
		}
		team := &teams[len(teams)-1]
		team.Players = append(team.Players, models.Player{
			ID:        *playerID,
			Name:      deref(name),
			Army:      deref(army),
			Archetype: deref(archetype),
		})
	}
	return teams, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
