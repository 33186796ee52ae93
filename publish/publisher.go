package publish

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bgraf/mdship/filesystem"
	"github.com/bgraf/mdship/logging"
	"github.com/bgraf/mdship/markdown"
	"github.com/bgraf/mdship/media"
	"github.com/bgraf/mdship/storage"
)

var (
	ErrRead   = errors.New("read document")
	ErrUpload = errors.New("upload")
)

// MetadataRunID is the object metadata key carrying the run identifier.
const MetadataRunID = "mdship-run"

// Options are the plain configuration values a Publisher works with.
type Options struct {
	Bucket     string
	Namespace  string
	PublicBase string
	MaxSize    int

	// Timestamp is shared by all object keys of one run.
	Timestamp int64
	RunID     string
}

// Target describes where a local file referenced by a document is published.
type Target struct {
	Document    string `yaml:"document"`
	LocalPath   string `yaml:"local_path"`
	ObjectKey   string `yaml:"key"`
	ContentType string `yaml:"content_type"`
	PublicURL   string `yaml:"url"`
}

// Publisher uploads the local images of Markdown documents and rewrites the
// documents to reference the uploaded copies.
type Publisher struct {
	opts     Options
	store    storage.Storage
	fs       filesystem.FS
	logger   logging.Logger
	consumed *ConsumedFiles
}

func New(opts Options, store storage.Storage, fsys filesystem.FS, logger logging.Logger) *Publisher {
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Publisher{
		opts:     opts,
		store:    store,
		fs:       fsys,
		logger:   logger,
		consumed: NewConsumedFiles(),
	}
}

// Consumed returns the set of local files uploaded so far.
func (p *Publisher) Consumed() *ConsumedFiles {
	return p.consumed
}

// ResolvePath resolves an image path relative to the directory of document.
func ResolvePath(document, imagePath string) (string, error) {
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(document), imagePath)
	}

	return filepath.Abs(imagePath)
}

// ObjectKey returns "<namespace>/<timestamp>-<basename>". Files sharing a
// basename collide within one run.
func ObjectKey(namespace string, timestamp int64, localPath string) string {
	return fmt.Sprintf("%s/%d-%s", namespace, timestamp, filepath.Base(localPath))
}

// Resolve computes the upload target of a local occurrence without any I/O.
func (p *Publisher) Resolve(document string, occ markdown.Occurrence) (Target, error) {
	localPath, err := ResolvePath(document, occ.Path)
	if err != nil {
		return Target{}, fmt.Errorf("resolve '%s': %w", occ.Path, err)
	}

	contentType, err := media.ContentType(localPath)
	if err != nil {
		return Target{}, fmt.Errorf("'%s': %w", localPath, err)
	}

	key := ObjectKey(p.opts.Namespace, p.opts.Timestamp, localPath)

	return Target{
		Document:    document,
		LocalPath:   localPath,
		ObjectKey:   key,
		ContentType: contentType,
		PublicURL:   p.opts.PublicBase + "/" + key,
	}, nil
}

// Upload reads the target's file and stores it. On success the local path is
// recorded as consumed.
func (p *Publisher) Upload(ctx context.Context, target Target) error {
	data, err := p.fs.ReadFile(target.LocalPath)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", ErrUpload, target.LocalPath, err)
	}

	data, err = media.Scale(data, target.ContentType, p.opts.MaxSize)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", ErrUpload, target.LocalPath, err)
	}

	obj := storage.Object{
		Bucket:      p.opts.Bucket,
		Key:         target.ObjectKey,
		Body:        data,
		ContentType: target.ContentType,
	}
	if p.opts.RunID != "" {
		obj.Metadata = map[string]string{MetadataRunID: p.opts.RunID}
	}

	ack, err := p.store.PutObject(ctx, obj)
	if err != nil {
		return fmt.Errorf("%w '%s' to '%s': %w", ErrUpload, target.LocalPath, target.ObjectKey, err)
	}

	p.logger.Info("uploaded", "file", target.LocalPath, "key", target.ObjectKey, "content_type", target.ContentType)
	p.logger.Debug("storage acknowledged", "key", target.ObjectKey, "etag", ack.ETag, "version", ack.VersionID)

	p.consumed.Add(target.LocalPath)

	return nil
}

// PublishBody uploads every local image of body and returns the rewritten
// body. Occurrences are handled from last to first, each splice directly
// following its upload, so earlier offsets stay valid. On error the partially
// rewritten body is returned along with it.
func (p *Publisher) PublishBody(ctx context.Context, document, body string) (string, []Target, error) {
	occurrences := markdown.Scan(body)
	targets := make([]Target, 0, len(occurrences))

	body, err := markdown.RewriteFunc(body, occurrences, func(occ markdown.Occurrence) (string, bool, error) {
		target, err := p.Resolve(document, occ)
		if err != nil {
			return "", false, err
		}

		if err := p.Upload(ctx, target); err != nil {
			return "", false, err
		}

		targets = append(targets, target)
		return target.PublicURL, true, nil
	})

	return body, targets, err
}

// PublishDocument publishes the images of the document at path and overwrites
// it with the rewritten text. The file is only written if every image was
// published.
func (p *Publisher) PublishDocument(ctx context.Context, path string) ([]Target, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", ErrRead, path, err)
	}

	body, targets, err := p.PublishBody(ctx, path, string(data))
	if err != nil {
		return targets, err
	}

	if len(targets) == 0 {
		p.logger.Debug("no local images", "document", path)
	}

	if err := p.fs.WriteFile(path, []byte(body)); err != nil {
		return targets, fmt.Errorf("write document '%s': %w", path, err)
	}

	return targets, nil
}

// Run publishes documents one after another and stops at the first error.
func (p *Publisher) Run(ctx context.Context, documents []string) ([]Target, error) {
	var all []Target

	for _, document := range documents {
		p.logger.Info("publishing", "document", document)

		targets, err := p.PublishDocument(ctx, document)
		all = append(all, targets...)
		if err != nil {
			return all, err
		}
	}

	return all, nil
}

// Plan resolves the targets of all local images in documents, in document
// order, without uploading or writing anything.
func (p *Publisher) Plan(documents []string) ([]Target, error) {
	var all []Target

	for _, document := range documents {
		data, err := p.fs.ReadFile(document)
		if err != nil {
			return all, fmt.Errorf("%w '%s': %w", ErrRead, document, err)
		}

		for _, occ := range markdown.Scan(string(data)) {
			if occ.IsRemote() {
				continue
			}

			target, err := p.Resolve(document, occ)
			if err != nil {
				return all, err
			}

			all = append(all, target)
		}
	}

	return all, nil
}
