package postgres

const insertEventSQL = `
INSERT INTO events (
  id, name, venue, organizer, event_date, event_time,
  description, price, profile, cover, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
`

const getEventSQL = `
SELECT id, name, venue, organizer, event_date, event_time,
       description, price, profile, cover, created_at, updated_at
FROM events WHERE id = $1
`

const listEventsSQL = `
SELECT id, name, venue, organizer, event_date, event_time,
       description, price, profile, cover, created_at, updated_at
FROM events
ORDER BY created_at ASC, id ASC
`

const deleteEventSQL = `
DELETE FROM events WHERE id = $1
`

const listParticipantsSQL = `
SELECT pass_id, name, contact_number, entry, registered_at
FROM participants
WHERE event_id = $1
ORDER BY position ASC
`

// The dedup check and the append are one statement: the unique constraint on
// (event_id, contact_number) serializes concurrent registrations per event.
const insertParticipantSQL = `
INSERT INTO participants (pass_id, event_id, name, contact_number, entry, registered_at)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT ON CONSTRAINT participants_event_contact_uniq DO NOTHING
`

const markEntrySQL = `
UPDATE participants SET entry = TRUE
WHERE event_id = $1 AND pass_id = $2
RETURNING pass_id, name, contact_number, entry, registered_at
`

const insertAdminSQL = `
INSERT INTO admins (admin_id, email, name, pass, created_at)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (admin_id) DO NOTHING
`

const insertAdminEventSQL = `
INSERT INTO admin_events (
  admin_id, event_id, name, venue, event_date, event_time,
  price, profile, cover, organizer
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
ON CONFLICT (admin_id, event_id) DO NOTHING
`

const deleteAdminEventSQL = `
DELETE FROM admin_events WHERE admin_id = $1 AND event_id = $2
`

const listAdminEventsSQL = `
SELECT event_id, name, venue, event_date, event_time,
       price, profile, cover, organizer
FROM admin_events
WHERE admin_id = $1
ORDER BY event_id ASC
`
