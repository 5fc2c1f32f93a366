package tagging

import "github.com/Torchit1/Speed-Draft/internal/domain/shared"

// multiElementHostVersion is the first host version whose tags expose all of
// their tagged elements; older hosts expose a single local element per tag.
const multiElementHostVersion = 2022

// TaggedElementReader extracts the element identifiers covered by an
// existing tag. The host API shape diverged across versions, so the reader
// is chosen once per run from the document's host version.
type TaggedElementReader interface {
	// Name returns the unique name of the reader
	Name() string
	// Description returns a human-readable description
	Description() string
	// CoveredElementIDs returns the identifiers of the elements the tag
	// references. A tag with no element reference is unreadable and yields
	// an error; callers log and skip it.
	CoveredElementIDs(tag Tag) ([]int64, error)
}

// ReaderForHostVersion selects the reader matching the host's tag API shape
func ReaderForHostVersion(version int) TaggedElementReader {
	if version < multiElementHostVersion {
		return singleElementReader{}
	}
	return multiElementReader{}
}

type singleElementReader struct{}

func (singleElementReader) Name() string { return "single-element" }

func (singleElementReader) Description() string {
	return "Reads the single local element a tag references on hosts before 2022"
}

func (singleElementReader) CoveredElementIDs(tag Tag) ([]int64, error) {
	if len(tag.ElementIDs) == 0 {
		return nil, shared.NewDomainError("DANGLING_TAG", "Tag references no element")
	}
	return tag.ElementIDs[:1:1], nil
}

type multiElementReader struct{}

func (multiElementReader) Name() string { return "multi-element" }

func (multiElementReader) Description() string {
	return "Reads every local element a tag references on hosts from 2022 on"
}

func (multiElementReader) CoveredElementIDs(tag Tag) ([]int64, error) {
	if len(tag.ElementIDs) == 0 {
		return nil, shared.NewDomainError("DANGLING_TAG", "Tag references no element")
	}
	ids := make([]int64, len(tag.ElementIDs))
	copy(ids, tag.ElementIDs)
	return ids, nil
}
