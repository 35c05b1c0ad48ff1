package registration

import (
	"context"
	"strings"
	"sync"
	"time"

	profileRepo "amora/database/repository/profile"
	"amora/models"
	"amora/services/account"
	"amora/services/notification"
	"amora/services/storage"
	"amora/utils"

	"go.uber.org/zap"
)

// SubmissionPipeline orchestrates the terminal submit: derived-content
// generation, account creation, concurrent photo upload, field-to-profile
// mapping and profile persistence. Account creation failing is fatal; upload
// and persistence failures degrade instead of rolling anything back.
type SubmissionPipeline struct {
	Accounts account.AccountService
	Storage  storage.StorageService
	Profiles profileRepo.ProfileRepository
	Notifier notification.NotificationService
}

// SubmissionResult is the outcome of a pipeline run.
type SubmissionResult struct {
	AccountID     string
	Token         string
	Email         string
	Name          string
	PhotoURLs     []string
	FailedUploads int
	ProfileSaved  bool
	Warning       string
}

// Fallback profile values: cosmetic gaps never block submission.
const (
	fallbackName     = "New User"
	fallbackAge      = 18
	fallbackLocation = "Not specified"
)

// Submit runs the pipeline. It records the created account's ID on the
// session as soon as account creation succeeds, so a retried submission never
// creates a second account.
func (p *SubmissionPipeline) Submit(ctx context.Context, sess *Session) (*SubmissionResult, error) {
	logger := utils.GetLogger()
	values := sess.Form.Values

	// Stage 1: synthesize a bio when the catalog maps one and the user
	// hasn't authored it. Deterministic, no external call.
	for key, rule := range sess.Form.Schema {
		if rule.Kind == RuleOptionalText && strings.TrimSpace(asString(values[key])) == "" {
			values[key] = GenerateBio(values)
		}
	}

	// Stage 2: account creation. Fatal on failure; nothing else runs.
	email := strings.TrimSpace(asString(values["email"]))
	if sess.CreatedAccountID == "" {
		accountID, err := p.Accounts.CreateAccount(ctx, email, asString(values["password"]))
		if err != nil {
			logger.Error("Submission: account creation failed", zap.String("sessionID", sess.ID), zap.Error(err))
			p.Notifier.Error(ctx, sess.ID, "We couldn't create your account: "+err.Error())
			return nil, &AuthError{Reason: err.Error(), Err: err}
		}
		sess.CreatedAccountID = accountID
	}
	result := &SubmissionResult{AccountID: sess.CreatedAccountID, Email: email}

	// Stage 3: concurrent photo uploads. Partial failure is a warning, not
	// a rollback; the account already exists.
	urls, failed := p.uploadPhotos(ctx, sess.CreatedAccountID, sess.PendingPhotos)
	result.PhotoURLs = urls
	result.FailedUploads = failed
	if failed > 0 {
		uploadErr := &UploadError{Failed: failed, Total: len(sess.PendingPhotos)}
		logger.Warn("Submission: some photo uploads failed",
			zap.String("accountID", sess.CreatedAccountID),
			zap.Int("failed", failed), zap.Int("total", len(sess.PendingPhotos)))
		p.Notifier.Warning(ctx, sess.ID, "Some photos didn't upload; you can add them from your profile.")
		result.Warning = uploadErr.Error()
	}

	// Stage 4: map answered questions onto the profile record.
	profile := buildProfile(sess, urls)
	result.Name = profile.Name

	// Stage 5: persist the profile. Failure is a degraded success; the user
	// is pointed at the profile-completion flow rather than told everything
	// failed.
	if err := p.Profiles.Save(profile); err != nil {
		persistErr := &PersistError{AccountID: sess.CreatedAccountID, Err: err}
		logger.Error("Submission: profile save failed", zap.String("accountID", sess.CreatedAccountID), zap.Error(err))
		p.Notifier.Warning(ctx, sess.ID, "Your account was created but your profile needs finishing.")
		result.Warning = persistErr.Error()
	} else {
		result.ProfileSaved = true
	}

	if token, err := p.Accounts.IssueToken(ctx, sess.CreatedAccountID, email); err != nil {
		logger.Warn("Submission: failed to issue auth token", zap.String("accountID", sess.CreatedAccountID), zap.Error(err))
	} else {
		result.Token = token
	}

	if result.Warning == "" {
		p.Notifier.Success(ctx, sess.ID, "Welcome aboard! Your profile is live.")
	}
	return result, nil
}

// uploadPhotos uploads every pending photo concurrently and waits for all of
// them to settle. The returned URLs preserve attachment order; failed uploads
// are dropped and counted.
func (p *SubmissionPipeline) uploadPhotos(ctx context.Context, accountID string, photos []models.PendingPhoto) ([]string, int) {
	if len(photos) == 0 {
		return []string{}, 0
	}

	slots := make([]string, len(photos))
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	for i, photo := range photos {
		wg.Add(1)
		go func(i int, photo models.PendingPhoto) {
			defer wg.Done()
			url, err := p.Storage.UploadImage(ctx, accountID, photo.Index, photo.ContentType, photo.Data)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				utils.GetLogger().Warn("Photo upload failed",
					zap.String("accountID", accountID), zap.Int("index", photo.Index), zap.Error(err))
				return
			}
			slots[i] = url
		}(i, photo)
	}
	wg.Wait()

	urls := make([]string, 0, len(slots))
	for _, url := range slots {
		if url != "" {
			urls = append(urls, url)
		}
	}
	return urls, failed
}

// buildProfile copies every enabled question's value onto the profile record
// under its profile field name, applying the photo/name/age transforms and
// the hard-coded fallbacks for missing name, age and location.
func buildProfile(sess *Session, photoURLs []string) *models.Profile {
	values := sess.Form.Values
	profile := &models.Profile{
		AccountID:  sess.CreatedAccountID,
		Photos:     photoURLs,
		Attributes: make(map[string]any),
	}

	var firstName, lastName string
	for _, q := range sess.Questions {
		if !q.Enabled || q.ProfileField == "" {
			continue
		}
		v := values[q.ID]
		switch q.ProfileField {
		case "photos":
			// Replaced wholesale by the uploaded URLs, never the local refs.
		case "firstName":
			firstName = strings.TrimSpace(asString(v))
		case "lastName":
			lastName = strings.TrimSpace(asString(v))
		case "name", "full_name":
			profile.Name = strings.TrimSpace(asString(v))
		case "dateOfBirth":
			if dob, err := ParseBirthDate(strings.TrimSpace(asString(v))); err == nil {
				profile.Age = AgeFromDate(dob, time.Now())
			}
		case "bio":
			profile.Bio = strings.TrimSpace(asString(v))
		case "location":
			profile.Location = strings.TrimSpace(asString(v))
		case "zodiacSign":
			profile.ZodiacSign = asString(v)
		default:
			profile.Attributes[q.ProfileField] = v
		}
	}

	if profile.Name == "" {
		profile.Name = strings.TrimSpace(firstName + " " + lastName)
	}
	if profile.ZodiacSign == "" {
		profile.ZodiacSign = asString(values["zodiacSign"])
	}
	if profile.Age == 0 {
		if n, ok := asNumber(values["age"]); ok {
			profile.Age = int(n)
		}
	}

	if profile.Name == "" {
		profile.Name = fallbackName
	}
	if profile.Age <= 0 {
		profile.Age = fallbackAge
	}
	if profile.Location == "" {
		profile.Location = fallbackLocation
	}
	return profile
}
