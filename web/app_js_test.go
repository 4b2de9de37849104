package web

import (
	"fmt"
	"testing"

	"github.com/dop251/goja"
)

// fakeDOM is just enough of a browser for app.js: elements are created on
// demand, pdf.js hands back a document of pageCount blank pages and every
// assignment to #ranges.innerHTML is counted.
const fakeDOM = `
var rangeRebuilds = 0;
function FakeElement(tag) {
  this.tagName = tag;
  this.children = [];
  this.dataset = {};
  this.listeners = {};
  this.classList = { add: function () {}, remove: function () {}, toggle: function () {} };
}
FakeElement.prototype.appendChild = function (child) { this.children.push(child); return child; };
FakeElement.prototype.addEventListener = function (type, fn) { this.listeners[type] = fn; };
FakeElement.prototype.getContext = function () { return {}; };
FakeElement.prototype.querySelectorAll = function (selector) {
  var found = [];
  (function walk(node) {
    node.children.forEach(function (child) {
      if (selector === 'input' ? child.tagName === 'input' : child.dataset.page !== undefined) {
        found.push(child);
      }
      walk(child);
    });
  })(this);
  return found;
};
Object.defineProperty(FakeElement.prototype, 'innerHTML', {
  get: function () { return ''; },
  set: function () {
    this.children = [];
    if (this.id === 'ranges') { rangeRebuilds++; }
  },
});

var elements = {};
var document = {
  body: new FakeElement('body'),
  getElementById: function (id) {
    if (!elements[id]) {
      elements[id] = new FakeElement('div');
      elements[id].id = id;
    }
    return elements[id];
  },
  createElement: function (tag) { return new FakeElement(tag); },
};
var window = { location: { href: '' } };
var console = { error: function () {} };
function setTimeout() { return 0; }
function clearTimeout() {}
function fetch() { return Promise.resolve({ ok: true }); }

var pdfjsLib = {
  GlobalWorkerOptions: {},
  getDocument: function () {
    return { promise: Promise.resolve({
      numPages: pageCount,
      getPage: function () {
        return Promise.resolve({
          getViewport: function () { return { width: 10, height: 10 }; },
          render: function () { return { promise: Promise.resolve() }; },
        });
      },
    }) };
  },
};

function chooseFile() {
  var input = elements['file-input'];
  input.files = [{
    name: 'a.pdf',
    type: 'application/pdf',
    size: 10,
    arrayBuffer: function () { return Promise.resolve(new ArrayBuffer(1)); },
  }];
  input.listeners.change();
}
`

// newAppVM runs app.js against the fake DOM with a document of pageCount pages.
func newAppVM(t *testing.T, pageCount int) *goja.Runtime {
	t.Helper()
	vm := goja.New()
	if _, err := vm.RunString(fmt.Sprintf("var pageCount = %d;", pageCount)); err != nil {
		t.Fatal(err)
	}
	if _, err := vm.RunScript("dom.js", fakeDOM); err != nil {
		t.Fatalf("run fake DOM: %v", err)
	}
	for _, name := range []string{"selection.js", "app.js"} {
		src, err := files.ReadFile("static/" + name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if _, err := vm.RunScript(name, string(src)); err != nil {
			t.Fatalf("run %s: %v", name, err)
		}
	}
	return vm
}

func evalInt(t *testing.T, vm *goja.Runtime, expr string) int64 {
	t.Helper()
	v, err := vm.RunString(expr)
	if err != nil {
		t.Fatalf("eval %s: %v", expr, err)
	}
	return v.ToInteger()
}

func TestAppJSThumbnailsKeepRangeRows(t *testing.T) {
	rebuilds := map[int]int64{}
	for _, pages := range []int{1, 6} {
		vm := newAppVM(t, pages)
		if _, err := vm.RunString("chooseFile()"); err != nil {
			t.Fatalf("choose file: %v", err)
		}
		if got := evalInt(t, vm, "elements.thumbnails.children.length"); got != int64(pages) {
			t.Fatalf("%d-page document rendered %d thumbnails", pages, got)
		}
		if got := evalInt(t, vm, "elements.ranges.children.length"); got != 1 {
			t.Errorf("range rows = %d, want 1", got)
		}
		rebuilds[pages] = evalInt(t, vm, "rangeRebuilds")
	}
	if rebuilds[1] != rebuilds[6] {
		t.Errorf("range rows rebuilt %d times for 1 page and %d times for 6 pages", rebuilds[1], rebuilds[6])
	}
}

func TestAppJSTypedRangeSurvivesSelection(t *testing.T) {
	vm := newAppVM(t, 4)
	if _, err := vm.RunString("chooseFile()"); err != nil {
		t.Fatalf("choose file: %v", err)
	}
	script := `
var row = elements.ranges.children[0];
var from = row.children[0];
from.value = '3';
from.listeners.input();
elements.thumbnails.children[1].listeners.click();
[elements.ranges.children[0] === row, row.children[0] === from, from.value === '3'].join(',');
`
	v, err := vm.RunString(script)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := v.String(); got != "true,true,true" {
		t.Errorf("range row after selecting a page: %s, want true,true,true", got)
	}
}
