package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orbya/portfolio-backend/models"
)

// Database bundles one store per collection so handlers receive a single
// dependency. Projects/skills/contact/status follow the database-first,
// seed-fallback policy; quotes/stats/config live purely in files.
type Database struct {
	client *mongo.Client

	projects *Store[int, models.Project]
	skills   *Store[int, models.Skill]
	contact  *Store[string, models.ContactMessage]
	status   *Store[string, models.StatusCheck]

	quotes     *Document[[]models.Quote]
	stats      *Document[[]models.Stat]
	siteConfig *Document[models.SiteConfig]
}

// New wires every store against the named Mongo database and the seed
// directory. A nil client selects in-memory primaries, which keeps the
// service serving seed data without a database.
func New(client *mongo.Client, dbName, dataDir string) Database {
	projectID := func(p models.Project) int { return p.ID }
	skillID := func(s models.Skill) int { return s.ID }
	messageID := func(m models.ContactMessage) string { return m.ID }
	checkID := func(c models.StatusCheck) string { return c.ID }

	var (
		projects Primary[int, models.Project]
		skills   Primary[int, models.Skill]
		contact  Primary[string, models.ContactMessage]
		status   Primary[string, models.StatusCheck]
	)
	if client != nil {
		db := client.Database(dbName)
		projects = NewMongoPrimary[int, models.Project](db.Collection("projects"))
		skills = NewMongoPrimary[int, models.Skill](db.Collection("skills"))
		contact = NewMongoPrimary[string, models.ContactMessage](db.Collection("contact_messages"))
		status = NewMongoPrimary[string, models.StatusCheck](db.Collection("status_checks"))
	} else {
		projects = NewMemoryPrimary[int, models.Project](projectID)
		skills = NewMemoryPrimary[int, models.Skill](skillID)
		contact = NewMemoryPrimary[string, models.ContactMessage](messageID)
		status = NewMemoryPrimary[string, models.StatusCheck](checkID)
	}

	return Database{
		client:   client,
		projects: NewStore("projects", projects, NewSeed[models.Project](dataDir, "projects"), projectID),
		skills:   NewStore("skills", skills, NewSeed[models.Skill](dataDir, "skills"), skillID),
		contact:  NewStore("contact_messages", contact, NewSeed[models.ContactMessage](dataDir, "contact_messages"), messageID),
		status:   NewStore("status_checks", status, NewSeed[models.StatusCheck](dataDir, "status_checks"), checkID),

		quotes:     NewDocument[[]models.Quote](dataDir, "quotes"),
		stats:      NewDocument[[]models.Stat](dataDir, "stats"),
		siteConfig: NewDocument[models.SiteConfig](dataDir, "config"),
	}
}

// Accessor methods for each store

func (d Database) Projects() *Store[int, models.Project] {
	return d.projects
}

func (d Database) Skills() *Store[int, models.Skill] {
	return d.skills
}

func (d Database) ContactMessages() *Store[string, models.ContactMessage] {
	return d.contact
}

func (d Database) StatusChecks() *Store[string, models.StatusCheck] {
	return d.status
}

func (d Database) Quotes() *Document[[]models.Quote] {
	return d.quotes
}

func (d Database) Stats() *Document[[]models.Stat] {
	return d.stats
}

func (d Database) SiteConfig() *Document[models.SiteConfig] {
	return d.siteConfig
}

// Close releases the database client. Safe to call when running without
// one.
func (d Database) Close(ctx context.Context) error {
	if d.client == nil {
		return nil
	}
	return d.client.Disconnect(ctx)
}
