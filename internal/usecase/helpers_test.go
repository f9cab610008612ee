package usecase

import (
	"time"

	"kept_house/internal/domain/entities"
	mock_interfaces "kept_house/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// passLocker grants every lock and counts the releases.
func passLocker(ctrl *gomock.Controller, released *int) *mock_interfaces.MockILocker {
	l := mock_interfaces.NewMockILocker(ctrl)
	l.EXPECT().Lock(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, _ string) (func(), error) {
		return func() {
			if released != nil {
				*released++
			}
		}, nil
	}).AnyTimes()
	return l
}

func quietNotifier(ctrl *gomock.Controller) *mock_interfaces.MockINotifier {
	n := mock_interfaces.NewMockINotifier(ctrl)
	n.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return n
}

// bumpVersion mimics a successful versioned write.
func bumpVersion(_ any, j entities.Job) (entities.Job, error) {
	j.Version++
	return j, nil
}

func activeJob(id string) entities.Job {
	return entities.Job{
		ID:         id,
		ClientName: "Harper",
		Status:     entities.JobStatusActive,
		Stage:      entities.JobStageOnlineSale,
		ServiceFee: 200,
		Version:    1,
	}
}

func f64(v float64) *float64 { return &v }

func bumpDocVersion(_ any, d entities.ItemDocument) (entities.ItemDocument, error) {
	d.Version++
	return d, nil
}

// approvedDocument has three approved items over five photos.
func approvedDocument(id, jobID string) entities.ItemDocument {
	return entities.ItemDocument{
		ID:     id,
		JobID:  jobID,
		Photos: []string{"p0", "p1", "p2", "p3", "p4"},
		Status: entities.ItemStatusApproved,
		ApprovedItems: []entities.ApprovedItem{
			{ItemNumber: 1, PhotoIndices: []int{0, 1}, Title: "Oak dresser", Category: "Furniture", Price: f64(120)},
			{ItemNumber: 2, PhotoIndices: []int{2}, Title: "Brass lamp", Category: "Misc", PriceLow: 20, PriceHigh: 45},
			{ItemNumber: 3, PhotoIndices: []int{3, 4}, Title: "Drill set", Category: "Tools", Price: f64(60)},
		},
		Version: 1,
	}
}
