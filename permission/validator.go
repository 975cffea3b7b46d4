// Package permission implements the multisig / permission validator of
// spec.md §4.2, grounded in the teacher's account-verification ante
// decorator (ante/evm/06_account_verification.go) — here generalized from
// a single EOA-nonce check into full weighted multisig evaluation.
package permission

import (
	"bytes"
	"fmt"
	"sort"

	"cosmossdk.io/log"

	"github.com/opentron-labs/txexec/address"
	"github.com/opentron-labs/txexec/contract"
	"github.com/opentron-labs/txexec/state"
)

// Validator checks a signer set against an account's permissions and
// weight thresholds.
type Validator struct {
	logger log.Logger
}

// New constructs a Validator. A nil logger is replaced with a no-op one.
func New(logger log.Logger) Validator {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return Validator{logger: logger}
}

// dedupe sorts signers and removes duplicates. It reports whether any
// duplicate was found, matching the Rust reference's
// `recover_addrs.sort(); recover_addrs.dedup()` followed by a length
// comparison.
func dedupe(signers []address.Address) ([]address.Address, bool) {
	sorted := make([]address.Address, len(signers))
	copy(sorted, signers)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})

	deduped := sorted[:0:0]
	for i, a := range sorted {
		if i == 0 || !a.Equal(sorted[i-1]) {
			deduped = append(deduped, a)
		}
	}
	return deduped, len(deduped) != len(signers)
}

// signerNotFoundError renders one of two wordings depending on which
// permission branch is evaluating it — see ValidateSignatures.
type signerNotFoundError struct {
	addr          address.Address
	activeVariant bool
}

func (e signerNotFoundError) Error() string {
	if e.activeVariant {
		return fmt.Sprintf("%s is not in permission keys", e.addr)
	}
	return fmt.Sprintf("signature address %s is not in permission keys", e.addr)
}

func sumWeightWithWording(keys []state.PermissionKey, signers []address.Address, activeVariant bool) (int64, error) {
	var total int64
	for _, signer := range signers {
		found := false
		for _, key := range keys {
			if key.Address.Equal(signer) {
				total += key.Weight
				found = true
				break
			}
		}
		if !found {
			return 0, signerNotFoundError{addr: signer, activeVariant: activeVariant}
		}
	}
	return total, nil
}

// ValidateSignatures implements spec.md §4.2. signers is not modified: it
// is copied before sorting and deduplication, so the caller's slice keeps
// its original order and length.
func (v Validator) ValidateSignatures(
	owner address.Address,
	acct state.Account,
	permissionID int32,
	signers []address.Address,
	operationTag int32,
	allowMultisig bool,
) error {
	v.logger.Debug("validate signatures", "owner", owner.String(), "permission_id", permissionID, "signer_count", len(signers))

	deduped, hadDuplicate := dedupe(signers)
	if hadDuplicate {
		return ErrDuplicateSignature
	}
	signers = deduped

	if allowMultisig {
		if permissionID == 0 && acct.OwnerPermission != nil {
			perm := *acct.OwnerPermission
			total, err := sumWeightWithWording(perm.Keys, signers, false)
			if err != nil {
				return err
			}
			if total >= perm.Threshold {
				return nil
			}
			return ErrInsufficientWeight
		}

		if permissionID >= 2 {
			if activePerm, ok := acct.ActivePermission(permissionID); ok {
				if !activePerm.OperationAllowed(operationTag) {
					return fmt.Errorf("operation bit of %d is disabled", operationTag)
				}
				total, err := sumWeightWithWording(activePerm.Keys, signers, true)
				if err != nil {
					return err
				}
				if total >= activePerm.Threshold {
					return nil
				}
				return ErrInsufficientWeight
			}
		}
	}

	// default owner fallback
	if permissionID == 0 && len(signers) == 1 && owner.Equal(signers[0]) {
		return nil
	}
	// default active fallback
	if permissionID == 2 && len(signers) == 1 && owner.Equal(signers[0]) &&
		contract.Kind(operationTag) != contract.AccountPermissionUpdate {
		return nil
	}

	return ErrInvalidSignature
}
