package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// theCurrentDateIs pins the injected clock. Date-only values are pinned
// to noon UTC so day boundaries stay away from the scenario's instant.
func (t *testContext) theCurrentDateIs(value string) error {
	if instant, err := time.Parse(time.RFC3339, value); err == nil {
		t.clock.Set(instant.UTC())
		return nil
	}
	day, err := time.Parse(entity.DateKeyLayout, value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", value, err)
	}
	t.clock.Set(day.UTC().Add(12 * time.Hour))
	return nil
}

func (t *testContext) aHabitExistsWithNameInCategory(name, category string) error {
	count, err := t.habitRepo.Count(context.Background())
	if err != nil {
		return err
	}

	h := entity.NewHabit(name, category, int(count), t.clock.Now())
	if err := t.habitRepo.Create(context.Background(), h); err != nil {
		return err
	}

	t.lastHabitID = h.ID
	return nil
}

func (t *testContext) theHabitIsCompletedOn(name, date string) error {
	h, err := t.findHabitByName(name)
	if err != nil {
		return err
	}

	if !h.Completions.Has(date) {
		h.Completions.Toggle(date)
	}
	return t.habitRepo.Update(context.Background(), h)
}

func (t *testContext) findHabitByName(name string) (*entity.Habit, error) {
	habits, err := t.habitRepo.FindAll(context.Background())
	if err != nil {
		return nil, err
	}
	for _, h := range habits {
		if h.Name == name {
			return h, nil
		}
	}
	return nil, fmt.Errorf("habit %q not found", name)
}

func (t *testContext) aProjectExistsWithNameAtProgress(name string, progress int) error {
	p := entity.NewProject(name, "", t.clock.Now())
	if progress != 0 {
		p.SetProgress(progress, t.clock.Now())
	}

	if err := t.projectRepo.Create(context.Background(), p); err != nil {
		return err
	}

	t.lastProjectID = p.ID
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{habit_id}}", t.lastHabitID.String())
	content = strings.ReplaceAll(content, "{{project_id}}", t.lastProjectID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.server.URL + path

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture created resource IDs for later {{...}} placeholders.
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			if _, isHabit := responseBody["completions"]; isHabit {
				t.lastHabitID = id
			}
			if _, isProject := responseBody["progress"]; isProject {
				t.lastProjectID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if value := getFieldValue(t.response.body, field); value != nil {
		return fmt.Errorf("field %q should be absent, got %v", field, value)
	}
	return nil
}

// Database assertions query the relational tables directly, so the
// scenarios using them run against the default SQLite driver.

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	slicePtr := newModelSlice(entityModel)
	if err := t.db.DbConn.Unscoped().Find(slicePtr.Interface()).Error; err != nil {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	slicePtr := newModelSlice(entityModel)
	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}
	if err := query.Find(slicePtr.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func newModelSlice(entityModel any) reflect.Value {
	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	slicePtr := reflect.New(entitySlice.Type())
	slicePtr.Elem().Set(entitySlice)
	return slicePtr
}

// getFieldValue resolves a dot-separated path through nested JSON
// objects and arrays ("data.0.name").
func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
