// Package mongo persiste los usuarios de authd en un document store:
// un documento por usuario con name, email (único), password (hash) y createdAt.
package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"petcare/internal/domain/users"
)

const usersCollection = "users"

type userDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"` // hash bcrypt, nunca plaintext
	CreatedAt time.Time `bson:"createdAt"`
}

// Open conecta, hace ping y asegura el índice único por email.
func Open(ctx context.Context, uri, database string) (*mongo.Client, *UsersRepo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}

	col := client.Database(database).Collection(usersCollection)

	// La unicidad de email la garantiza el store, no el servicio.
	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}

	return client, &UsersRepo{col: col}, nil
}

type UsersRepo struct {
	col *mongo.Collection
}

func NewUsersRepo(col *mongo.Collection) *UsersRepo {
	return &UsersRepo{col: col}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.col.InsertOne(ctx, userDoc{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.PasswordHash,
		CreatedAt: u.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return users.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (users.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}

	return users.User{
		ID:           doc.ID,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
