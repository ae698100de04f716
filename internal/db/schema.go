package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS program_day (
	id				BIGSERIAL PRIMARY KEY,
	program_id		TEXT NOT NULL,
	day_number		INT NOT NULL CHECK (day_number >= 1),
	name			TEXT NOT NULL,
	day_type		TEXT NOT NULL CHECK (day_type IN ('WORKOUT', 'REST', 'ACTIVE_RECOVERY', 'OPTIONAL', 'DELOAD')),
	template_key	TEXT NOT NULL DEFAULT '',
	description		TEXT NOT NULL DEFAULT '',
	UNIQUE (program_id, day_number)
);

CREATE TABLE IF NOT EXISTS enrollment (
	id							BIGSERIAL PRIMARY KEY,
	user_id						TEXT NOT NULL,
	program_id					TEXT NOT NULL,
	enrolled_at					TIMESTAMPTZ NOT NULL,
	started_at					TIMESTAMPTZ,
	current_day					INT NOT NULL DEFAULT 0,
	status						TEXT NOT NULL CHECK (status IN ('ENROLLED', 'IN_PROGRESS', 'PAUSED', 'COMPLETED', 'CANCELLED')),
	estimated_completion_date	TIMESTAMPTZ,
	total_days_completed		INT NOT NULL DEFAULT 0,
	total_days_skipped			INT NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_enrollment_user_id ON enrollment(user_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_enrollment_one_active_per_user
	ON enrollment(user_id) WHERE status IN ('ENROLLED', 'IN_PROGRESS', 'PAUSED');

CREATE TABLE IF NOT EXISTS day_completion (
	id					BIGSERIAL PRIMARY KEY,
	enrollment_id		BIGINT NOT NULL REFERENCES enrollment(id) ON DELETE CASCADE,
	program_day_id		BIGINT NOT NULL,
	program_day_number	INT NOT NULL,
	status				TEXT NOT NULL CHECK (status IN ('COMPLETED', 'SKIPPED', 'PARTIAL')),
	completion_date		TIMESTAMPTZ NOT NULL,
	workout_session_id	TEXT NOT NULL DEFAULT '',
	notes				TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_day_completion_enrollment_id ON day_completion(enrollment_id);

CREATE TABLE IF NOT EXISTS day_substitution (
	program_day				INT NOT NULL CHECK (program_day >= 1),
	original_exercise_id	TEXT NOT NULL,
	substitute_exercise_id	TEXT NOT NULL,
	created_at				TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (program_day, original_exercise_id)
);

CREATE TABLE IF NOT EXISTS personal_record (
	id			BIGSERIAL PRIMARY KEY,
	exercise_id	TEXT NOT NULL,
	type		TEXT NOT NULL CHECK (type IN ('ONE_REP_MAX', 'BEST_SET', 'SESSION_VOLUME')),
	value		DOUBLE PRECISION NOT NULL,
	session_id	TEXT NOT NULL DEFAULT '',
	date		TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_personal_record_exercise_type ON personal_record(exercise_id, type, value DESC);

CREATE TABLE IF NOT EXISTS logged_set (
	id			BIGSERIAL PRIMARY KEY,
	session_id	TEXT NOT NULL,
	exercise_id	TEXT NOT NULL,
	set_number	INT NOT NULL,
	weight		DOUBLE PRECISION NOT NULL,
	reps		INT NOT NULL,
	rpe			DOUBLE PRECISION NOT NULL DEFAULT 0,
	logged_at	TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_logged_set_logged_at ON logged_set(logged_at);

CREATE TABLE IF NOT EXISTS progression_record (
	exercise_id		TEXT PRIMARY KEY,
	working_weight	DOUBLE PRECISION NOT NULL,
	reps			INT NOT NULL,
	session_id		TEXT NOT NULL DEFAULT '',
	updated_at		TIMESTAMPTZ NOT NULL
);
`

// Migrate ensures tables exist. Call once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
