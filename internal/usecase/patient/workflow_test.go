package patient

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"swasthya-backend/internal/adapter/repository/memory"
	domain "swasthya-backend/internal/domain/patient"
	"swasthya-backend/internal/domain/user"
)

// End-to-end flows against the real in-memory store.

func newMemoryUsecase() *Usecase {
	store := memory.NewStore()
	return NewUsecase(store.Patients(), memory.NewUoW(store))
}

func TestWorkflow_FourApprovalsFinalize(t *testing.T) {
	u := newMemoryUsecase()
	ctx := context.Background()

	dto, err := u.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	wantLevels := []string{
		string(domain.LevelDistrict),
		string(domain.LevelState),
		string(domain.LevelSuperAdmin),
		string(domain.LevelFinalApproved),
	}
	for i, want := range wantLevels {
		dto, err = u.Approve(ctx, ApproveInput{PatientID: dto.PatientID, ApprovedBy: "admin"})
		if err != nil {
			t.Fatalf("approval %d: %v", i+1, err)
		}
		if dto.CurrentLevel != want {
			t.Fatalf("approval %d: level = %s, want %s", i+1, dto.CurrentLevel, want)
		}
		if len(dto.ApprovalHistory) != i+1 {
			t.Fatalf("approval %d: history length = %d, want %d", i+1, len(dto.ApprovalHistory), i+1)
		}
	}
	if dto.Status != string(domain.StatusApproved) {
		t.Fatalf("status after 4 approvals = %s, want approved", dto.Status)
	}

	// a finalized case is terminal
	if _, err := u.Approve(ctx, ApproveInput{PatientID: dto.PatientID, ApprovedBy: "admin"}); !errors.Is(err, domain.ErrNotPending) {
		t.Fatalf("fifth approval err = %v, want ErrNotPending", err)
	}
}

func TestWorkflow_RejectAtDistrict(t *testing.T) {
	u := newMemoryUsecase()
	ctx := context.Background()

	dto, err := u.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// fresh submission is a hospital_admin matter, not a district one
	if got := mustList(t, u, user.RoleHospitalAdmin); len(got) != 1 {
		t.Fatalf("hospital_admin sees %d, want 1", len(got))
	}
	if got := mustList(t, u, user.RoleDistrictAdmin); len(got) != 0 {
		t.Fatalf("district_admin sees %d before hospital approval, want 0", len(got))
	}

	dto, err = u.Approve(ctx, ApproveInput{PatientID: dto.PatientID, ApprovedBy: "Hospital Administrator"})
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if got := mustList(t, u, user.RoleDistrictAdmin); len(got) != 1 {
		t.Fatalf("district_admin sees %d after hospital approval, want 1", len(got))
	}

	dto, err = u.Reject(ctx, RejectInput{PatientID: dto.PatientID, RejectedBy: "District Administrator", Reason: "ineligible"})
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if dto.Status != string(domain.StatusRejected) || dto.CurrentLevel != string(domain.LevelDistrict) {
		t.Fatalf("rejected case = %s at %s, want rejected frozen at district", dto.Status, dto.CurrentLevel)
	}
	if len(dto.ApprovalHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(dto.ApprovalHistory))
	}

	for _, role := range []user.Role{user.RoleHospitalAdmin, user.RoleDistrictAdmin, user.RoleStateAdmin, user.RoleSuperAdmin} {
		if got := mustList(t, u, role); len(got) != 0 {
			t.Fatalf("%s still sees the rejected case", role)
		}
	}
	// the submission log keeps it
	if got := mustList(t, u, user.RoleDataEntry); len(got) != 1 {
		t.Fatal("data_entry log lost the rejected case")
	}

	// terminal: both transitions refuse and nothing changes
	before := mustList(t, u, user.RoleDataEntry)
	if _, err := u.Approve(ctx, ApproveInput{PatientID: dto.PatientID, ApprovedBy: "x"}); !errors.Is(err, domain.ErrNotPending) {
		t.Fatalf("approve after reject: err = %v, want ErrNotPending", err)
	}
	if _, err := u.Reject(ctx, RejectInput{PatientID: dto.PatientID, RejectedBy: "x", Reason: "y"}); !errors.Is(err, domain.ErrNotPending) {
		t.Fatalf("reject after reject: err = %v, want ErrNotPending", err)
	}
	after := mustList(t, u, user.RoleDataEntry)
	if !reflect.DeepEqual(before, after) {
		t.Fatal("failed transitions must leave the store unchanged")
	}
}

func TestWorkflow_UnknownIDLeavesStoreUnchanged(t *testing.T) {
	u := newMemoryUsecase()
	ctx := context.Background()

	if _, err := u.Submit(ctx, validSubmit()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	before := mustList(t, u, user.RoleDataEntry)

	if _, err := u.Approve(ctx, ApproveInput{PatientID: "deadbeef", ApprovedBy: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	after := mustList(t, u, user.RoleDataEntry)
	if !reflect.DeepEqual(before, after) {
		t.Fatal("approve on unknown id must not mutate the store")
	}
}

func TestWorkflow_InsertionOrderPreserved(t *testing.T) {
	u := newMemoryUsecase()
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, n := range names {
		in := validSubmit()
		in.Name = n
		if _, err := u.Submit(ctx, in); err != nil {
			t.Fatalf("Submit %s: %v", n, err)
		}
	}

	got := mustList(t, u, user.RoleDataEntry)
	if len(got) != len(names) {
		t.Fatalf("listed %d, want %d", len(got), len(names))
	}
	for i, n := range names {
		if got[i].Name != n {
			t.Fatalf("position %d = %s, want %s", i, got[i].Name, n)
		}
	}
}

func mustList(t *testing.T, u *Usecase, role user.Role) []*PatientDTO {
	t.Helper()
	out, err := u.ListForRole(context.Background(), role)
	if err != nil {
		t.Fatalf("ListForRole(%s): %v", role, err)
	}
	return out
}
