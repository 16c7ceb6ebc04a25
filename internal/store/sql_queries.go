package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// psql is the shared squirrel builder configured for PostgreSQL $n
// placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var identityColumns = []string{
	"id",
	"email",
	"password_hash",
	"created_at",
	"last_login",
}

var faceLinkColumns = []string{
	"identity_id",
	"object_ref",
	"url",
	"format",
	"created_at",
}

func buildInsertIdentityQuery(id, email, passwordHash string, createdAt time.Time) (string, []any, error) {
	return psql.
		Insert("identities").
		Columns("id", "email", "password_hash", "created_at").
		Values(id, email, passwordHash, createdAt).
		Suffix("RETURNING " + joinColumns(identityColumns)).
		ToSql()
}

func buildSelectIdentityQuery(id string) (string, []any, error) {
	return psql.
		Select(identityColumns...).
		From("identities").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteIdentityQuery(id string) (string, []any, error) {
	return psql.
		Delete("identities").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildTouchLastLoginQuery(id string, at time.Time) (string, []any, error) {
	return psql.
		Update("identities").
		Set("last_login", at).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSelectOrphanIdentitiesQuery selects identities created before the
// cutoff that hold no face link: the residue of a failed registration
// compensation.
func buildSelectOrphanIdentitiesQuery(olderThan time.Time) (string, []any, error) {
	return psql.
		Select(prefixColumns("i", identityColumns)...).
		From("identities i").
		LeftJoin("face_links f ON f.identity_id = i.id").
		Where(sq.And{
			sq.Expr("f.identity_id IS NULL"),
			sq.Lt{"i.created_at": olderThan},
		}).
		ToSql()
}

func buildInsertFaceLinkQuery(identityID, objectRef, url, format string, createdAt time.Time) (string, []any, error) {
	return psql.
		Insert("face_links").
		Columns(faceLinkColumns...).
		Values(identityID, objectRef, url, format, createdAt).
		Suffix("RETURNING " + joinColumns(faceLinkColumns)).
		ToSql()
}

func buildSelectFaceLinkByIdentityQuery(identityID string) (string, []any, error) {
	return psql.
		Select(faceLinkColumns...).
		From("face_links").
		Where(sq.Eq{"identity_id": identityID}).
		ToSql()
}

func buildSelectAllFaceLinksQuery() (string, []any, error) {
	return psql.
		Select(faceLinkColumns...).
		From("face_links").
		ToSql()
}

func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

func prefixColumns(prefix string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = prefix + "." + c
	}
	return out
}
