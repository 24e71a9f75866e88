package capture

// Page selectors and scripts for the receipt document. These mirror the
// markup the receipt site renders; changing the site's class names means
// changing these in lockstep.
const (
	selectorReady   = ".key, .no-games"
	selectorKey     = ".key"
	selectorOverlay = ".receipt-overlay.visible"
	selectorReceipt = ".receipt"
)

// discoverKeysScript lists the rendered winner controls in document order.
const discoverKeysScript = `Array.from(document.querySelectorAll('.key')).map((b) => ({
	id: b.dataset.teamId,
	name: b.querySelector('.key-name')?.textContent || '',
	score: b.querySelector('.key-score')?.textContent || '',
}))`

const hasKeysScript = `document.querySelector('.key') !== null`

const pageTextScript = `document.querySelector('#content')?.textContent?.trim() || ''`

// freezeAnimationsScript forces the slide-in and print animations to their
// resting state. A mid-animation screenshot is a correctness bug.
const freezeAnimationsScript = `(() => {
	const slide = document.querySelector('.receipt-slide');
	if (slide) {
		slide.style.animation = 'none';
		slide.style.transform = 'translateX(-50%) translateY(0)';
	}
	document.querySelectorAll('.receipt-line-item, .receipt-line-extra').forEach((el) => {
		el.style.animation = 'none';
		el.style.opacity = '1';
		el.classList.add('printed');
	});
})()`

// awaitImagesScript resolves once every image inside the receipt has either
// loaded or failed. Failure resolves too; this wait never blocks on a broken
// logo URL.
const awaitImagesScript = `(() => {
	const receipt = document.querySelector('.receipt');
	if (!receipt) return Promise.resolve();
	const images = Array.from(receipt.querySelectorAll('img'));
	return Promise.all(images.map((img) => {
		if (img.complete) return Promise.resolve();
		return new Promise((resolve) => {
			img.addEventListener('load', resolve);
			img.addEventListener('error', resolve);
		});
	}));
})()`

const taglineScript = `document.querySelector('.receipt .receipt-tagline')?.textContent || ''`

const dismissScript = `document.dispatchEvent(new KeyboardEvent('keydown', { key: 'Escape' }))`
