package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/lazygod321/rustplusplus/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertPairedQuery = `
INSERT INTO paired_members(server_id, member_id, name)
VALUES ($1, $2, $3)
RETURNING paired_at`
	deletePairedQuery  = `DELETE FROM paired_members WHERE server_id=$1 AND member_id=$2`
	selectPairedQuery  = `SELECT member_id, name, paired_at FROM paired_members WHERE server_id=$1 ORDER BY paired_at, member_id`
	uniqueViolationSQL = "23505"
)

// PairMember adds a member to the paired index of a server.
func (p *Postgres) PairMember(ctx context.Context, pm entities.PairedMember) (*entities.PairedMember, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	res := pm
	if err := p.db.QueryRow(ctx, insertPairedQuery, pm.ServerID, string(pm.MemberID), pm.Name).Scan(&res.PairedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationSQL {
			return nil, entities.ErrAlreadyPaired
		}
		return nil, fmt.Errorf("insert paired member: %w", err)
	}

	p.log.Infow("member paired", "server_id", pm.ServerID, "member_id", pm.MemberID)
	return &res, nil
}

// UnpairMember removes a member from the paired index of a server.
func (p *Postgres) UnpairMember(ctx context.Context, serverID string, memberID entities.MemberID) error {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	tag, err := p.db.Exec(ctx, deletePairedQuery, serverID, string(memberID))
	if err != nil {
		return fmt.Errorf("delete paired member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrNotPaired
	}

	p.log.Infow("member unpaired", "server_id", serverID, "member_id", memberID)
	return nil
}

// PairedMembers lists the paired index of a server in pairing order.
func (p *Postgres) PairedMembers(ctx context.Context, serverID string) ([]entities.PairedMember, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	rows, err := p.db.Query(ctx, selectPairedQuery, serverID)
	if err != nil {
		return nil, fmt.Errorf("get paired members: %w", err)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.PairedMember, error) {
		var (
			pm entities.PairedMember
			id string
		)
		if err := row.Scan(&id, &pm.Name, &pm.PairedAt); err != nil {
			return pm, err
		}
		pm.ServerID = serverID
		pm.MemberID = entities.MemberID(id)
		return pm, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan paired members: %w", err)
	}
	return list, nil
}
