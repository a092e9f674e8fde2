package mongodb

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"empdir/internal/domain/entity"
	"empdir/internal/domain/repository"
	"empdir/internal/errors"
	"empdir/internal/infra/persistence/model"
)

// employeeRepository implements the repository.EmployeeRepository interface
// on the 'employees' collection.
type employeeRepository struct {
	coll *mongo.Collection
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *mongo.Database) repository.EmployeeRepository {
	return &employeeRepository{
		coll: db.Collection(model.EmployeeModel{}.CollectionName()),
	}
}

// FindAll returns every employee, most recently created first.
func (repo *employeeRepository) FindAll(ctx context.Context) ([]*entity.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	return decodeEmployees(ctx, cursor)
}

// FindByID retrieves a single employee by its hex object id.
func (repo *employeeRepository) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var employeeM model.EmployeeModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&employeeM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by id")
	}

	return employeeM.ToEntity(), nil
}

// FindByEmail retrieves a single employee by exact email match.
func (repo *employeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	var employeeM model.EmployeeModel
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&employeeM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by email")
	}

	return employeeM.ToEntity(), nil
}

// ExistsByEmailExcluding reports whether an employee other than excludeID
// holds the given email.
func (repo *employeeRepository) ExistsByEmailExcluding(ctx context.Context, email, excludeID string) (bool, error) {
	filter := bson.M{"email": email}
	if excludeID != "" {
		oid, err := parseObjectID(excludeID)
		if err != nil {
			return false, err
		}
		filter["_id"] = bson.M{"$ne": oid}
	}

	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, errors.Wrap(err, "failed to count employees")
	}

	return count > 0, nil
}

// Search matches the supplied criteria as case-insensitive substrings,
// ANDed together when both are present.
func (repo *employeeRepository) Search(ctx context.Context, criteria repository.EmployeeSearch) ([]*entity.Employee, error) {
	filter := bson.M{}
	if criteria.Designation != "" {
		filter["designation"] = caseInsensitivePattern(criteria.Designation)
	}
	if criteria.Department != "" {
		filter["department"] = caseInsensitivePattern(criteria.Department)
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search employees")
	}

	return decodeEmployees(ctx, cursor)
}

// Create persists a new employee and fills in the generated id and
// timestamps. Unique index violations surface as repository.ErrDuplicateKey.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	employeeM := model.FromEmployeeEntity(employee)
	result, err := repo.coll.InsertOne(ctx, employeeM)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateKey
		}

		return errors.Wrap(err, "failed to create employee")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		employee.ID = oid.Hex()
	}

	return nil
}

// Update applies the non-nil fields as a partial $set and returns the
// document as it stands after the update.
func (repo *employeeRepository) Update(ctx context.Context, id string, update repository.EmployeeUpdate) (*entity.Employee, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	applyUpdateFields(set, update)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var employeeM model.EmployeeModel
	err = repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&employeeM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrEmployeeNotFound
		}
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateKey
		}

		return nil, errors.Wrap(err, "failed to update employee")
	}

	return employeeM.ToEntity(), nil
}

// Delete removes the employee with the given id.
func (repo *employeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	err = repo.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.ErrEmployeeNotFound
		}

		return errors.Wrap(err, "failed to delete employee")
	}

	return nil
}

func applyUpdateFields(set bson.M, update repository.EmployeeUpdate) {
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Gender != nil {
		set["gender"] = string(*update.Gender)
	}
	if update.Designation != nil {
		set["designation"] = *update.Designation
	}
	if update.Salary != nil {
		set["salary"] = *update.Salary
	}
	if update.DateOfJoining != nil {
		set["date_of_joining"] = *update.DateOfJoining
	}
	if update.Department != nil {
		set["department"] = *update.Department
	}
	if update.EmployeePhoto != nil {
		set["employee_photo"] = *update.EmployeePhoto
	}
}

// caseInsensitivePattern builds a substring regex with the criterion
// escaped, so user input never becomes regex syntax.
func caseInsensitivePattern(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

func decodeEmployees(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Employee, error) {
	defer cursor.Close(ctx)

	employees := make([]*entity.Employee, 0)
	for cursor.Next(ctx) {
		var employeeM model.EmployeeModel
		if err := cursor.Decode(&employeeM); err != nil {
			return nil, errors.Wrap(err, "failed to decode employee")
		}
		employees = append(employees, employeeM.ToEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "cursor iteration failed")
	}

	return employees, nil
}
