package contracts

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/stretchr/testify/require"
)

func TestGetMissingFiles(t *testing.T) {
	_fs := fstest.MapFS{}

	// Missing NEF.
	_, err := read(_fs, lockVaultContracts)
	require.Error(t, err)

	// Missing manifest.
	_fs[lockerDir+"/"+nefName] = &fstest.MapFile{}
	_, err = read(_fs, lockVaultContracts)
	require.Error(t, err)
}

func TestReadInvalidFormat(t *testing.T) {
	var (
		_fs          = fstest.MapFS{}
		nefPath      = lockerDir + "/" + nefName
		manifestPath = lockerDir + "/" + manifestName
	)

	_, validNEF := anyValidNEF(t)
	_, validManifest := anyValidManifest(t, "locker")

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err := read(_fs, []string{lockerDir})
	require.NoError(t, err)

	_fs[nefPath] = &fstest.MapFile{Data: []byte("not a NEF")}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err = read(_fs, []string{lockerDir})
	require.ErrorIs(t, err, errInvalidNEF)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: []byte("not a manifest")}

	_, err = read(_fs, []string{lockerDir})
	require.ErrorIs(t, err, errInvalidManifest)
}

func TestReadOrder(t *testing.T) {
	_fs := fstest.MapFS{}

	_, validNEF := anyValidNEF(t)
	for _, dir := range lockVaultContracts {
		_, validManifest := anyValidManifest(t, dir)
		_fs[dir+"/"+nefName] = &fstest.MapFile{Data: validNEF}
		_fs[dir+"/"+manifestName] = &fstest.MapFile{Data: validManifest}
	}

	cs, err := read(_fs, lockVaultContracts)
	require.NoError(t, err)
	require.Len(t, cs, len(lockVaultContracts))

	for i := range cs {
		require.Equal(t, lockVaultContracts[i], cs[i].Manifest.Name)
	}
	// The locker is deployed last, after all of its satellites.
	require.Equal(t, lockerDir, cs[len(cs)-1].Manifest.Name)
}

func anyValidNEF(tb testing.TB) (nef.File, []byte) {
	script := make([]byte, 32)

	_nef, err := nef.NewFile(script)
	require.NoError(tb, err)

	bNEF, err := _nef.Bytes()
	require.NoError(tb, err)

	return *_nef, bNEF
}

func anyValidManifest(tb testing.TB, name string) (manifest.Manifest, []byte) {
	_manifest := manifest.NewManifest(name)

	bManifest, err := json.Marshal(_manifest)
	require.NoError(tb, err)

	return *_manifest, bManifest
}
